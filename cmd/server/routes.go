package main

import (
	"github.com/gin-gonic/gin"

	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/internal/interfaces/http/handlers"
	"talenthub.backend/internal/interfaces/http/middleware"
	"talenthub.backend/internal/usecases"
)

type routeDeps struct {
	jobHandler          *handlers.JobHandler
	candidateHandler    *handlers.CandidateHandler
	curatedLinkHandler  *handlers.CuratedLinkHandler
	announcementHandler *handlers.AnnouncementHandler
	investmentHandler   *handlers.InvestmentHandler
	affiliationHandler  *handlers.AffiliationHandler
	blogPostHandler     *handlers.BlogPostHandler
	apiKeyHandler       *handlers.APIKeyHandler
	metaHandler         *handlers.MetaHandler
	publicHandler       *handlers.PublicHandler
	apiKeyUsecase       *usecases.APIKeyUsecase
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")

	// Public read endpoints (no key required)
	v1.GET("/jobs", d.publicHandler.ListJobs)
	v1.GET("/candidates", d.publicHandler.ListCandidates)
	v1.GET("/meta/job-tags", d.metaHandler.JobTags)

	read := middleware.RequireAPIKey(d.apiKeyUsecase, entities.PermCatalogRead)
	write := middleware.RequireAPIKey(d.apiKeyUsecase, entities.PermCatalogWrite)
	admin := middleware.RequireAPIKey(d.apiKeyUsecase, entities.PermAdmin)

	adm := v1.Group("/admin")
	{
		jobs := adm.Group("/jobs")
		{
			jobs.GET("", read, d.jobHandler.List)
			jobs.GET("/:id", read, d.jobHandler.Get)
			jobs.POST("", write, d.jobHandler.Create)
			jobs.PUT("/:id", write, d.jobHandler.Update)
			jobs.DELETE("/:id", write, d.jobHandler.Delete)
		}

		candidates := adm.Group("/candidates")
		{
			candidates.GET("", read, d.candidateHandler.List)
			candidates.GET("/:id", read, d.candidateHandler.Get)
			candidates.POST("", write, d.candidateHandler.Create)
			candidates.PUT("/:id", write, d.candidateHandler.Update)
			candidates.DELETE("/:id", write, d.candidateHandler.Delete)
		}

		links := adm.Group("/links")
		{
			links.GET("", read, d.curatedLinkHandler.List)
			links.GET("/:id", read, d.curatedLinkHandler.Get)
			links.POST("", write, d.curatedLinkHandler.Create)
			links.PUT("/:id", write, d.curatedLinkHandler.Update)
			links.DELETE("/:id", write, d.curatedLinkHandler.Delete)
		}

		announcements := adm.Group("/announcements")
		{
			announcements.GET("", read, d.announcementHandler.List)
			announcements.GET("/:id", read, d.announcementHandler.Get)
			announcements.POST("", write, d.announcementHandler.Create)
			announcements.PUT("/:id", write, d.announcementHandler.Update)
			announcements.DELETE("/:id", write, d.announcementHandler.Delete)
		}

		investments := adm.Group("/investments")
		{
			investments.GET("", read, d.investmentHandler.List)
			investments.GET("/:id", read, d.investmentHandler.Get)
			investments.POST("", write, d.investmentHandler.Create)
			investments.PUT("/:id", write, d.investmentHandler.Update)
			investments.DELETE("/:id", write, d.investmentHandler.Delete)
		}

		affiliations := adm.Group("/affiliations")
		{
			affiliations.GET("", read, d.affiliationHandler.List)
			affiliations.GET("/:id", read, d.affiliationHandler.Get)
			affiliations.POST("", write, d.affiliationHandler.Create)
			affiliations.PUT("/:id", write, d.affiliationHandler.Update)
			affiliations.DELETE("/:id", write, d.affiliationHandler.Delete)
		}

		posts := adm.Group("/posts")
		{
			posts.GET("", read, d.blogPostHandler.List)
			posts.GET("/:id", read, d.blogPostHandler.Get)
			posts.POST("", write, d.blogPostHandler.Create)
			posts.PUT("/:id", write, d.blogPostHandler.Update)
			posts.DELETE("/:id", write, d.blogPostHandler.Delete)
		}

		keys := adm.Group("/keys")
		keys.Use(admin)
		{
			keys.GET("", d.apiKeyHandler.List)
			keys.POST("", d.apiKeyHandler.Create)
			keys.DELETE("/:id", d.apiKeyHandler.Deactivate)
		}
	}
}
