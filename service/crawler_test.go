package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Acme Corp | Industrial Supplies</title>
  <meta property="og:site_name" content="Acme Corp">
</head>
<body>
  <p>Fale conosco: <a href="mailto:contato@acme.com.br?subject=hi">contato@acme.com.br</a></p>
  <p>Vendas: vendas@acme.com.br</p>
  <p>Telefone: +55 11 91234-5678</p>
</body>
</html>`

func TestCrawlerExtractsContacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	cr := NewCrawler(srv.Client())
	resp, err := cr.Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Equal(t, 2, resp.LeadsExtracted)

	assert.Equal(t, "Acme Corp", resp.Leads[0].CompanyName)
	assert.Equal(t, "contato@acme.com.br", resp.Leads[0].Email)
	assert.Equal(t, "vendas@acme.com.br", resp.Leads[1].Email)
	assert.NotEmpty(t, resp.Leads[0].Phone)
}

func TestCrawlerRejectsInvalidURL(t *testing.T) {
	cr := NewCrawler(nil)

	_, err := cr.Extract(context.Background(), "ftp://example.com")
	assert.Error(t, err)

	_, err = cr.Extract(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestCrawlerPropagatesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	cr := NewCrawler(srv.Client())
	_, err := cr.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestCrawlerHonorsCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cr := NewCrawler(srv.Client())
	_, err := cr.Extract(ctx, srv.URL)
	assert.Error(t, err)
}

func TestPageCompanyNameFallsBackToTitle(t *testing.T) {
	page := `<html><head><title>Globex - Home</title></head><body>x@globex.io</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	cr := NewCrawler(srv.Client())
	resp, err := cr.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Leads)

	assert.Equal(t, "Globex", resp.Leads[0].CompanyName)
}
