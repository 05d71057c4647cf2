package models

// ProspectSearchRequest places/web search input
type ProspectSearchRequest struct {
	Query    string `json:"query" binding:"required"`
	Location string `json:"location"`
}

// SearchResult one prospecting hit, from either provider
type SearchResult struct {
	CompanyName      string  `json:"companyName"`
	Address          string  `json:"address,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Website          string  `json:"website,omitempty"`
	Rating           float64 `json:"rating,omitempty"`
	UserRatingsTotal int     `json:"userRatingsTotal,omitempty"`
	Link             string  `json:"link,omitempty"`
	Description      string  `json:"description,omitempty"`
	Source           string  `json:"source,omitempty"`
}

// ProspectSearchResponse search output
type ProspectSearchResponse struct {
	Results []SearchResult `json:"results"`
}

// CrawlRequest crawler extraction input
type CrawlRequest struct {
	URL string `json:"url" binding:"required"`
}

// CrawledLead one contact extracted from a crawled page
type CrawledLead struct {
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// CrawlResponse crawler extraction output
type CrawlResponse struct {
	Success        bool          `json:"success"`
	LeadsExtracted int           `json:"leadsExtracted"`
	Leads          []CrawledLead `json:"leads,omitempty"`
	Error          string        `json:"error,omitempty"`
}

// ImportSource which flow produced the candidates, used for quota caps
type ImportSource string

const (
	ImportSourceSEARCH  ImportSource = "search"
	ImportSourceCRAWLER ImportSource = "crawler"
)

// ImportCandidate one selected result to persist as a lead
type ImportCandidate struct {
	CompanyName      string  `json:"companyName" binding:"required"`
	Address          string  `json:"address"`
	Phone            string  `json:"phone"`
	Website          string  `json:"website"`
	Email            string  `json:"email"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"userRatingsTotal"`
	Source           string  `json:"source"`
}

// ImportRequest bulk add-to-leads input
type ImportRequest struct {
	Source     ImportSource      `json:"source" binding:"required"`
	Candidates []ImportCandidate `json:"candidates" binding:"required"`
}
