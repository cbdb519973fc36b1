package main

import (
	"fmt"
	"net/http"

	"github.com/teamhub-intranet/leave-backend-go/internal/config"
	appHTTP "github.com/teamhub-intranet/leave-backend-go/internal/handler/http"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/jwt"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/llm"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/oauth"
	"github.com/teamhub-intranet/leave-backend-go/internal/repository/postgresql"
	approvalService "github.com/teamhub-intranet/leave-backend-go/internal/service/approval"
	authService "github.com/teamhub-intranet/leave-backend-go/internal/service/auth"
	documentService "github.com/teamhub-intranet/leave-backend-go/internal/service/document"
	leaveService "github.com/teamhub-intranet/leave-backend-go/internal/service/leave"
	overtimeService "github.com/teamhub-intranet/leave-backend-go/internal/service/overtime"
	summaryService "github.com/teamhub-intranet/leave-backend-go/internal/service/summary"
	worklogService "github.com/teamhub-intranet/leave-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	annualBalanceRepo := postgresql.NewAnnualBalanceRepository(db)
	compBalanceRepo := postgresql.NewCompBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	documentLabelRepo := postgresql.NewDocumentLabelRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService, googleService)
	leaveSvc := leaveService.NewLeaveService(txManager, annualBalanceRepo, compBalanceRepo, leaveRequestRepo, documentRepo, userRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo)
	documentSvc := documentService.NewDocumentService(txManager, documentRepo, documentLabelRepo, annualBalanceRepo)
	approvalSvc := approvalService.NewApprovalService(leaveRequestRepo, overtimeRepo, documentRepo)
	workLogSvc := worklogService.NewWorkLogService(workLogRepo)
	summarySvc := summaryService.NewSummaryService(workLogRepo, llmClient)

	handlers := appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(jwtService, authSvc, googleService),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc),
		Overtime: appHTTP.NewOvertimeHandler(overtimeSvc),
		Document: appHTTP.NewDocumentHandler(documentSvc),
		WorkLog:  appHTTP.NewWorkLogHandler(workLogSvc, summarySvc),
		Approval: appHTTP.NewApprovalHandler(approvalSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
