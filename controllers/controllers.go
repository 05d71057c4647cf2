package controllers

import (
	"github.com/leadflowbr/leadflow_end/config"
	"github.com/leadflowbr/leadflow_end/service"
)

var (
	planLimits     config.PlanLimits
	mailer         *service.Mailer
	placesClient   *service.PlacesClient
	webSearch      *service.WebSearchClient
	crawler        *service.Crawler
	checkoutClient *service.CheckoutClient
	checkoutSecret string
)

// Init wires the external collaborators used by the handlers.
func Init(cfg *config.Config, limits config.PlanLimits) {
	planLimits = limits
	mailer = service.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	placesClient = service.NewPlacesClient(cfg.PlacesAPIKey, nil)
	webSearch = service.NewWebSearchClient(cfg.SearchAPIKey, cfg.SearchEngineID, nil)
	crawler = service.NewCrawler(nil)
	checkoutClient = service.NewCheckoutClient(cfg.CheckoutAPIURL, cfg.CheckoutAPIKey, cfg.CheckoutSuccess, nil)
	checkoutSecret = cfg.CheckoutSecret
}
