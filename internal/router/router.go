package router

import (
	"Band_Plan/internal/handler"
	"Band_Plan/internal/middleware"
	"Band_Plan/internal/pkg"
	"Band_Plan/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(emailCfg pkg.SMTPConfig, producer *pkg.KafkaProducer) *gin.Engine {
	r := gin.Default()

	coverageSvc := service.NewCoverageService()
	availabilitySvc := service.NewAvailabilityService(coverageSvc)
	memberSvc := service.NewMemberService(coverageSvc, producer)
	inviteSvc := service.NewInviteService(emailCfg, coverageSvc, producer)
	eventSvc := service.NewEventService(coverageSvc, producer)
	calendarSvc := service.NewCalendarService(coverageSvc)

	user := handler.NewUserHandler(emailCfg)
	group := handler.NewGroupHandler(coverageSvc)
	member := handler.NewMemberHandler(memberSvc, inviteSvc)
	availability := handler.NewAvailabilityHandler(availabilitySvc, coverageSvc)
	event := handler.NewEventHandler(eventSvc)
	calendar := handler.NewCalendarHandler(calendarSvc)
	instrument := handler.NewInstrumentHandler()

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/send-code", user.SendCode)
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
	}

	// token 相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
	}

	// 乐队相关接口
	groupGroup := r.Group("/api/group")
	groupGroup.Use(middleware.AuthMiddleware())
	{
		groupGroup.POST("/create", group.Create)
		groupGroup.GET("/list", group.List)
		groupGroup.DELETE("/:id", group.Delete)

		// 花名册
		groupGroup.GET("/:id/members", member.List)
		groupGroup.POST("/:id/members", member.Add)
		groupGroup.PUT("/:id/members/:memberId", member.Edit)
		groupGroup.DELETE("/:id/members/:memberId", member.Remove)
		groupGroup.POST("/:id/members/:memberId/invite", member.Invite)

		// 空闲与整队可用性
		groupGroup.GET("/:id/coverage", availability.Coverage)
		groupGroup.GET("/:id/eligibility", availability.Eligibility)
		groupGroup.POST("/:id/availability", availability.Mark)
		groupGroup.DELETE("/:id/availability", availability.Unmark)

		// 事件排期
		groupGroup.GET("/:id/events", event.List)
		groupGroup.POST("/:id/events", event.Create)
		groupGroup.PUT("/:id/events/:eventId", event.Update)
		groupGroup.DELETE("/:id/events/:eventId", event.Delete)

		// 日历导出
		groupGroup.GET("/:id/calendar.ics", calendar.ICS)
		groupGroup.GET("/:id/available-dates.txt", calendar.AvailableDates)
	}

	// 乐器目录
	instrumentGroup := r.Group("/api/instruments")
	instrumentGroup.Use(middleware.AuthMiddleware())
	{
		instrumentGroup.GET("", instrument.List)
	}

	// 邀请与个人空闲
	meGroup := r.Group("/api/me")
	meGroup.Use(middleware.AuthMiddleware())
	{
		meGroup.GET("/availability", availability.MyDates)
		meGroup.POST("/accept-invite", member.AcceptInvite)
	}

	return r
}
