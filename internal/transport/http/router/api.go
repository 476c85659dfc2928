package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"library-api/internal/core/auth"
	"library-api/internal/core/cache"
	"library-api/internal/domain"
	"library-api/internal/repo"
	"library-api/internal/service"
	"library-api/internal/transport/http/handler"
	mdw "library-api/internal/transport/http/middleware"
)

type Deps struct {
	Log     *zap.Logger
	DB      *gorm.DB
	JWTer   *auth.JWTer
	Cache   *cache.Cache // 可为 nil
	BookTTL time.Duration
}

// NewAPIEngine 组装整条 API：仓储 → 服务 → handler → 路由
func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(d.Log),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	// 健康检查 + 指标，不走鉴权
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 依赖装配
	userRepo := repo.NewUserRepo(d.DB)
	bookRepo := repo.NewBookRepo(d.DB)
	memberRepo := repo.NewMemberRepo(d.DB)
	loanRepo := repo.NewLoanRepo(d.DB)

	authH := handler.NewAuthHandler(service.NewAuthService(userRepo, d.JWTer, d.Log))
	bookH := handler.NewBookHandler(service.NewBookService(bookRepo, d.Cache, d.BookTTL, d.Log))
	memberH := handler.NewMemberHandler(service.NewMemberService(memberRepo, userRepo, d.Log))
	loanH := handler.NewLoanHandler(service.NewLoanService(loanRepo, bookRepo, memberRepo, d.Log))

	// 公开端点：注册 / 登录
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)

	// 其余全部要求 Bearer token
	authed := r.Group("", mdw.AuthJWT(d.JWTer))
	authed.GET("/auth/me", authH.Me)

	books := authed.Group("/books")
	books.GET("", bookH.List)
	books.GET("/:id", bookH.Get)
	booksAdmin := books.Group("", mdw.RequireRole(domain.RoleAdmin))
	booksAdmin.POST("", bookH.Create)
	booksAdmin.PUT("/:id", bookH.Update)
	booksAdmin.DELETE("/:id", bookH.Delete)

	members := authed.Group("/members")
	members.GET("", memberH.List)
	members.GET("/:id", memberH.Get)
	membersAdmin := members.Group("", mdw.RequireRole(domain.RoleAdmin))
	membersAdmin.POST("", memberH.Create)
	membersAdmin.PUT("/:id", memberH.Update)
	membersAdmin.DELETE("/:id", memberH.Delete)

	loans := authed.Group("/loans")
	loans.POST("", loanH.Create)
	loans.GET("", loanH.List)
	loans.GET("/overdue/", loanH.Overdue)
	loans.GET("/:id", loanH.Get)
	loans.PUT("/:id", loanH.Return)

	return r
}
