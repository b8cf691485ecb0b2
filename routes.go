package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/config"
	"github.com/neocodez/portfolio/controllers"
	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/middleware"
	"github.com/neocodez/portfolio/services"
	"github.com/neocodez/portfolio/utils"
)

type application struct {
	auth     *services.AuthService
	projects *services.ProjectService
	blogs    *services.BlogService
	guides   *services.GuideService
	contact  *services.ContactService

	// store is nil when uploads are disabled.
	store utils.ObjectStore
	files *utils.FileValidator
}

func newRouter(cfg *config.Config, log *logger.Logger, app *application) *gin.Engine {
	r := gin.New()

	allowedOrigins := map[string]bool{}
	for _, origin := range cfg.AllowedOrigins {
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Info().Strs("origins", cfg.AllowedOrigins).Msg("allowed origins")

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	rl := cfg.RateLimit
	protect := middleware.Protect(app.auth)
	identify := middleware.Identify(app.auth)
	adminOnly := []gin.HandlerFunc{protect, middleware.AdminOnly()}

	auth := r.Group("/auth")
	{
		auth.POST("/register",
			middleware.RateLimit(rl.Register, rl.Window, "Too many registration attempts, please try again later"),
			controllers.Register(app.auth))
		auth.POST("/login",
			middleware.RateLimit(rl.Login, rl.Window, "Too many login attempts, please try again later"),
			controllers.Login(app.auth))
		auth.GET("/profile", controllers.GetProfile(app.auth))
		auth.POST("/forgot-password",
			middleware.RateLimit(rl.ForgotPassword, rl.Window, "Too many OTP requests, please try again later"),
			controllers.ForgotPassword(app.auth))
		auth.POST("/verify-otp", controllers.VerifyOtp(app.auth))
		auth.POST("/reset-password", controllers.ResetPassword(app.auth))
		auth.POST("/change-password", protect, controllers.ChangeMyPassword(app.auth))
	}

	projects := r.Group("/projects")
	{
		projects.GET("", identify, controllers.GetProjects(app.projects))
		projects.GET("/:slug", identify, controllers.GetProject(app.projects))
		projects.POST("", append(adminOnly, controllers.CreateProject(app.projects))...)
		projects.PUT("/:id", append(adminOnly, controllers.UpdateProject(app.projects))...)
		projects.DELETE("/:id", append(adminOnly, controllers.DeleteProject(app.projects))...)
	}

	blogs := r.Group("/blogs")
	{
		blogs.GET("", identify, controllers.GetBlogs(app.blogs))
		blogs.GET("/:slug", identify, controllers.GetBlog(app.blogs))
		blogs.POST("", append(adminOnly, controllers.CreateBlog(app.blogs))...)
		blogs.PUT("/:id", append(adminOnly, controllers.UpdateBlog(app.blogs))...)
		blogs.DELETE("/:id", append(adminOnly, controllers.DeleteBlog(app.blogs))...)
	}

	guides := r.Group("/guides")
	{
		guides.GET("", identify, controllers.GetGuides(app.guides))
		guides.GET("/:slug", identify, controllers.GetGuide(app.guides))
		guides.POST("", append(adminOnly, controllers.CreateGuide(app.guides))...)
		guides.PUT("/:id", append(adminOnly, controllers.UpdateGuide(app.guides))...)
		guides.DELETE("/:id", append(adminOnly, controllers.DeleteGuide(app.guides))...)
	}

	contact := r.Group("/contact")
	{
		contact.POST("",
			middleware.RateLimit(rl.Contact, rl.Window, "Too many messages, please try again later"),
			controllers.SubmitContact(app.contact))
		contact.GET("", append(adminOnly, controllers.GetContactMessages(app.contact))...)
		contact.DELETE("/:id", append(adminOnly, controllers.DeleteContactMessage(app.contact))...)
	}

	r.POST("/upload", append(adminOnly, controllers.UploadImage(app.store, app.files))...)

	return r
}
