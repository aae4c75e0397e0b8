package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"review-mine/internal/app"
	"review-mine/internal/config"
	"review-mine/internal/domain"
	"review-mine/internal/i18n"
	"review-mine/internal/service"
)

type mirror struct {
	reader   *bufio.Reader
	app      *app.App
	catalog  *i18n.Catalog
	session  i18n.Session
	pageSize int

	gen     service.Generation
	pending <-chan service.InsightResult
}

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	catalog, err := i18n.NewCatalog(cfg.DefaultLanguage)
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	m := &mirror{
		reader:   reader,
		app:      a,
		catalog:  catalog,
		session:  catalog.NewSession("", os.Getenv("LANG"), cfg.SelfProfileID),
		pageSize: cfg.PageSize,
	}

	for {
		m.drainInsight()

		fmt.Printf("\n===== Review Mine [%s] =====\n", m.session.Language)
		fmt.Printf("[1] %s\n", m.session.T.Nav.Network)
		fmt.Printf("[2] %s\n", m.session.T.Nav.Profile)
		fmt.Println("[3] Leaderboard")
		fmt.Printf("[4] %s\n", m.session.T.Common.TrendingNow)
		fmt.Println("[5] Language en/vi")
		fmt.Println("[6] Exit")
		fmt.Print("> ")

		switch m.readLine() {
		case "1":
			m.networkFlow(ctx)
		case "2":
			m.profileFlow(ctx, m.session.SelfID)
		case "3":
			m.leaderboardFlow(ctx)
		case "4":
			m.trendingFlow(ctx)
		case "5":
			fmt.Print("lang > ")
			m.session = m.catalog.NewSession(m.readLine(), "", m.session.SelfID)
		case "6":
			return
		default:
			fmt.Println("invalid option")
		}
	}
}

func (m *mirror) readLine() string {
	line, err := m.reader.ReadString('\n')
	if err != nil && line == "" {
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func (m *mirror) networkFlow(ctx context.Context) {
	fmt.Printf("%s > ", m.session.T.Common.SearchPlaceholder)
	query := m.readLine()
	page := 1

	for {
		ds, err := m.app.Store.Load(ctx)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		matches := service.SearchUsers(ds.Users, query)
		p := service.NewPage(matches, page, m.pageSize)

		fmt.Printf("\n--- %s (%d/%d) ---\n", m.session.T.Common.AllNodes, p.Page, p.TotalPages)
		for i, u := range p.Items {
			fmt.Printf("[%d] %s @%s  trust %.0f  lvl %d\n", i+1, u.Name, u.Username, u.TrustScore, u.Level())
		}
		if len(p.Items) == 0 {
			fmt.Println(m.session.T.Common.EmptyNode)
		}
		fmt.Println("[n] next  [p] prev  [b] back")
		fmt.Print("> ")

		choice := m.readLine()
		switch choice {
		case "n":
			if page < p.TotalPages {
				page++
			}
		case "p":
			if page > 1 {
				page--
			}
		case "b":
			return
		default:
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(p.Items) {
				fmt.Println("invalid selection")
				continue
			}
			m.profileFlow(ctx, p.Items[idx-1].ID)
		}
	}
}

func (m *mirror) profileFlow(ctx context.Context, id string) {
	// Entrar a un perfil invalida cualquier insight pendiente del anterior.
	gen := m.gen.Next()

	for {
		m.drainInsight()

		profile, err := m.app.Store.Profile(ctx, id)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		printProfile(m.session, profile)

		isSelf := profile.ID == m.session.SelfID
		fmt.Printf("[i] %s\n", m.session.T.Common.AIButton)
		if isSelf {
			fmt.Println("[e] edit name")
		} else {
			fmt.Printf("[f] %s\n", m.session.T.Common.SubmitFeedback)
		}
		fmt.Println("[b] back")
		fmt.Print("> ")

		switch m.readLine() {
		case "i":
			fmt.Println(m.session.T.Common.AILoading)
			m.pending = m.app.Insights.Start(ctx, profile.ID, profile.Reviews, gen)
		case "e":
			if !isSelf {
				continue
			}
			fmt.Print("name > ")
			if name := m.readLine(); name != "" {
				profile.Name = name
				if _, err := m.app.Store.Update(ctx, profile); err != nil {
					fmt.Printf("error: %v\n", err)
				}
			}
		case "f":
			if isSelf {
				continue
			}
			m.feedbackFlow(ctx, profile)
		case "b":
			m.gen.Next()
			return
		}
	}
}

// drainInsight muestra el resultado pendiente si llego y sigue siendo de la vista actual.
func (m *mirror) drainInsight() {
	if m.pending == nil {
		return
	}
	select {
	case res, ok := <-m.pending:
		m.pending = nil
		if !ok || !m.gen.IsCurrent(res.Generation) {
			return
		}
		fmt.Printf("\n--- %s ---\n%s\n", m.session.T.Common.GrowthInsight, res.Text)
	default:
	}
}

func (m *mirror) feedbackFlow(ctx context.Context, profile domain.UserProfile) {
	labels := m.session.T.DomainLabels()
	fmt.Println(m.session.T.Common.SelectDomain)
	for i, d := range profile.ActiveDomains {
		fmt.Printf("[%d] %s\n", i+1, labels[d])
	}
	fmt.Print("> ")
	idx, err := strconv.Atoi(m.readLine())
	if err != nil || idx < 1 || idx > len(profile.ActiveDomains) {
		fmt.Println("invalid selection")
		return
	}

	fmt.Printf("%s (1-5) > ", m.session.T.Common.RatingProtocol)
	rating, _ := strconv.Atoi(m.readLine())

	fmt.Printf("%s > ", m.session.T.Common.GrowthObs)
	comment := m.readLine()

	review, err := m.app.Feedback.Submit(ctx, profile.ID, service.FeedbackInput{
		Domain:    profile.ActiveDomains[idx-1],
		Rating:    rating,
		Comment:   comment,
		Anonymous: true,
	})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("%s: %s %d/5 [%s]\n", m.session.T.Common.Deploy, labels[review.Domain], review.Rating, review.Tag)
}

func (m *mirror) leaderboardFlow(ctx context.Context) {
	labels := m.session.T.DomainLabels()
	domains := domain.AllDomains()
	for i, d := range domains {
		fmt.Printf("[%d] %s\n", i+1, labels[d])
	}
	fmt.Print("> ")
	idx, err := strconv.Atoi(m.readLine())
	if err != nil || idx < 1 || idx > len(domains) {
		fmt.Println("invalid selection")
		return
	}

	ds, err := m.app.Store.Load(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	ranked := service.DomainLeaderboard(ds.Users, domains[idx-1])
	if len(ranked) == 0 {
		fmt.Println(m.session.T.Common.EmptyNode)
		return
	}
	fmt.Printf("\n--- %s: %s ---\n", m.session.T.Common.TrustRank, labels[domains[idx-1]])
	for i, u := range ranked {
		fmt.Printf("#%d %s (%.0f)\n", i+1, u.Name, u.TrustScore)
	}
}

func (m *mirror) trendingFlow(ctx context.Context) {
	ds, err := m.app.Store.Load(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("\n--- %s ---\n", m.session.T.Common.TrendingNow)
	for i, u := range service.TopTrending(ds.Users, service.CompactTrendingSize) {
		fmt.Printf("%d. %s  +%d\n", i+1, u.Name, u.WeeklyReviewCount())
	}
}

func printProfile(s i18n.Session, p domain.UserProfile) {
	fmt.Printf("\n--- %s (@%s) ---\n", p.Name, p.Username)
	fmt.Printf("%s: %.0f  lvl %d\n", s.T.Common.TrustRate, p.TrustScore, p.Level())
	if len(p.TopSkills) > 0 {
		fmt.Printf("%s: %s\n", s.T.Common.Skills, strings.Join(p.TopSkills, ", "))
	}

	fmt.Printf("%s:\n", s.T.Common.Radar)
	for _, pt := range service.RadarPoints(p.Reviews, s.T.DomainLabels()) {
		bar := strings.Repeat("#", int(pt.Value*2))
		fmt.Printf("  %-16s %-10s %.1f\n", pt.Label, bar, pt.Value)
	}

	fmt.Printf("%s (%d):\n", s.T.Common.FeedbackMines, len(p.Reviews))
	if len(p.Reviews) == 0 {
		fmt.Printf("  %s\n", s.T.Common.EmptyNode)
	}
	for _, r := range p.Reviews {
		fmt.Printf("  [%s] %s %d/5 %s: %s\n", r.CreatedAt, r.Domain, r.Rating, r.Tag, r.Comment)
	}
}
