package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	bookrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/book"
	campaignrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/campaign"
	commentrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/comment"
	launchplanrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/launchplan"
	memberrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/member"
	onboardingrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/onboarding"
	preferencesrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/preferences"
	resourcerepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/resource"
	royaltyrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/royalty"
	salerepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/sale"
	stagerepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/stage"
	taskrepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/task"
	workspacerepo "github.com/inkhouse/publishing-backend/internal/adapter/postgres/workspace"
	"github.com/inkhouse/publishing-backend/internal/adapter/provider/clerk"
	"github.com/inkhouse/publishing-backend/internal/adapter/provider/resend"
	"github.com/inkhouse/publishing-backend/internal/adapter/redis/profilecache"
	"github.com/inkhouse/publishing-backend/internal/auth"
	"github.com/inkhouse/publishing-backend/internal/config"
	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/account"
	"github.com/inkhouse/publishing-backend/internal/service/book"
	"github.com/inkhouse/publishing-backend/internal/service/marketing"
	"github.com/inkhouse/publishing-backend/internal/service/overview"
	"github.com/inkhouse/publishing-backend/internal/service/resource"
	"github.com/inkhouse/publishing-backend/internal/service/task"
	"github.com/inkhouse/publishing-backend/internal/service/team"
	"github.com/inkhouse/publishing-backend/internal/service/workspace"
	"github.com/inkhouse/publishing-backend/internal/transport/middleware"
	"github.com/inkhouse/publishing-backend/internal/transport/rest"
)

// App is the fully wired HTTP application.
type App struct {
	Handler http.Handler
	closers []func()
}

// Close releases background resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// New wires repositories, integrations, services and handlers on pool.
// Missing identity, email or cache settings degrade those features; they
// never fail startup.
func New(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*App, error) {
	a := &App{}

	workspaces := workspacerepo.New(pool)
	books := bookrepo.New(pool)
	stages := stagerepo.New(pool)
	royalties := royaltyrepo.New(pool)
	launchPlans := launchplanrepo.New(pool)
	tasks := taskrepo.New(pool)
	comments := commentrepo.New(pool)
	members := memberrepo.New(pool)
	resources := resourcerepo.New(pool)
	campaigns := campaignrepo.New(pool)
	sales := salerepo.New(pool)
	preferences := preferencesrepo.New(pool)
	onboarding := onboardingrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	health := rest.NewHealthHandler(pool, BuildVersion()).
		WithFeature("identity", cfg.Identity.Enabled()).
		WithFeature("email", cfg.Email.Enabled()).
		WithFeature("session_auth", cfg.Identity.SessionAuthEnabled()).
		WithFeature("invite_links", cfg.Identity.InviteLinksEnabled())

	var identity profilecache.Identity = clerk.Disabled{}
	if cfg.Identity.Enabled() {
		identity = clerk.NewClient(cfg.Identity.SecretKey, cfg.Identity.APIURL, logger)
	} else {
		logger.Warn("identity provider not configured; invitations are local only")
	}

	if cfg.Cache.Enabled() {
		client, err := profilecache.Connect(ctx, cfg.Cache.RedisURL)
		if err != nil {
			logger.Warn("profile cache unavailable", slog.String("error", err.Error()))
		} else {
			a.closers = append(a.closers, func() { _ = client.Close() })
			cache := profilecache.New(client, identity, cfg.Cache.ProfileTTL, logger)
			identity = cache
			health.WithOptional("profile_cache", cache)
		}
	}

	var mail interface {
		SendInvitation(ctx context.Context, inv domain.InvitationEmail) error
	} = resend.Disabled{}
	if cfg.Email.Enabled() {
		m, err := resend.NewMailer(cfg.Email.APIKey, cfg.Email.From, cfg.Email.APIURL, logger)
		if err != nil {
			return nil, fmt.Errorf("create mailer: %w", err)
		}
		mail = m
	}

	teamCfg := team.Config{
		RosterConcurrency: cfg.Fanout.RosterMaxConcurrency,
		InviteRedirectURL: cfg.Identity.InviteRedirectURL,
		AppBaseURL:        cfg.Identity.AppBaseURL,
	}
	var teamSvc *team.Service
	if cfg.Identity.InviteLinksEnabled() {
		signer := auth.NewInviteSigner(cfg.Identity.InviteLinkSecret, cfg.Identity.InviteLinkTTL)
		teamSvc = team.NewService(logger, members, workspaces, identity, mail, signer, teamCfg)
	} else {
		teamSvc = team.NewService(logger, members, workspaces, identity, mail, nil, teamCfg)
	}

	authMW := middleware.Auth(nil)
	if cfg.Identity.SessionAuthEnabled() {
		verifier, err := auth.NewSessionVerifier(cfg.Identity.SessionKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("session auth: %w", err)
		}
		authMW = middleware.Auth(verifier)
	}

	taskSvc := task.NewService(logger, tasks, comments, identity)

	overviewSvc := overview.NewService(logger, &overview.Repos{
		Workspaces:  workspaces,
		Books:       books,
		Tasks:       tasks,
		Stages:      stages,
		Royalties:   royalties,
		LaunchPlans: launchPlans,
		Comments:    comments,
		Authors:     taskSvc,
	}, cfg.Fanout.OverviewMaxConcurrency)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	a.closers = append(a.closers, limiter.Stop)

	router := rest.NewRouter(rest.Handlers{
		Health:    health,
		Workspace: rest.NewWorkspaceHandler(workspace.NewService(logger, workspaces), overviewSvc, logger),
		Book:      rest.NewBookHandler(book.NewService(logger, books, stages, royalties, launchPlans), logger),
		Task:      rest.NewTaskHandler(taskSvc, logger),
		Team:      rest.NewTeamHandler(teamSvc, logger),
		Resource:  rest.NewResourceHandler(resource.NewService(logger, resources), logger),
		Marketing: rest.NewMarketingHandler(marketing.NewService(logger, campaigns, sales), logger),
		Account:   rest.NewAccountHandler(account.NewService(logger, preferences, onboarding, txm), logger),
	}, rest.RouteLimits{
		Limiter:          limiter,
		InvitesPerMinute: cfg.RateLimit.InvitesPerMinute,
	})

	a.Handler = middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		authMW,
		middleware.Logger(logger),
	)(router)

	return a, nil
}
