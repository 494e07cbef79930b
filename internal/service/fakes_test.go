package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/repository"
)

// fakeProvider counts identity-provider calls and records claims so tests
// can assert both call counts and end-state role consistency.
type fakeProvider struct {
	createCalls int
	claimCalls  int
	deleteCalls int

	nextID string
	emails map[string]string
	claims map[string]domain.Role

	failCreate error
	failClaim  error
	failDelete error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		nextID: "principal-1",
		emails: make(map[string]string),
		claims: make(map[string]domain.Role),
	}
}

func (f *fakeProvider) CreatePrincipal(_ context.Context, email, _ string) (string, error) {
	f.createCalls++
	if f.failCreate != nil {
		return "", f.failCreate
	}
	id := f.nextID
	f.emails[id] = email
	return id, nil
}

func (f *fakeProvider) SetClaim(_ context.Context, id string, role domain.Role) error {
	f.claimCalls++
	if f.failClaim != nil {
		return f.failClaim
	}
	f.claims[id] = role
	return nil
}

func (f *fakeProvider) DeletePrincipal(_ context.Context, id string) error {
	f.deleteCalls++
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.emails[id]; !ok && f.nextID != id {
		return errors.New("principal not found")
	}
	delete(f.emails, id)
	delete(f.claims, id)
	return nil
}

type fakeAccountRepo struct {
	createCalls int
	updateCalls int
	deleteCalls int

	accounts map[string]domain.Account

	failCreate error
	failUpdate error
	failDelete error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]domain.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	f.createCalls++
	if f.failCreate != nil {
		return f.failCreate
	}
	f.accounts[account.ID] = *account
	return nil
}

func (f *fakeAccountRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	f.updateCalls++
	if f.failUpdate != nil {
		return f.failUpdate
	}
	account, ok := f.accounts[id]
	if !ok {
		return errors.New("account not found")
	}
	account.Role = role
	f.accounts[id] = account
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	if f.failDelete != nil {
		return f.failDelete
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, errors.New("account not found")
	}
	return &account, nil
}

func (f *fakeAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		out = append(out, account)
	}
	return out, nil
}

type fakeArticleRepo struct {
	createCalls int
	updateCalls int
	deleteCalls int

	articles map[string]domain.Article
	seq      int

	failCreate error
	failUpdate error
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[string]domain.Article)}
}

func (f *fakeArticleRepo) Create(_ context.Context, article *domain.Article) error {
	f.createCalls++
	if f.failCreate != nil {
		return f.failCreate
	}
	f.seq++
	article.ID = fmt.Sprintf("article-%d", f.seq)
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	f.articles[article.ID] = *article
	return nil
}

func (f *fakeArticleRepo) Update(_ context.Context, id string, fields repository.ArticleUpdate) error {
	f.updateCalls++
	if f.failUpdate != nil {
		return f.failUpdate
	}
	article, ok := f.articles[id]
	if !ok {
		return errors.New("article not found")
	}
	article.Title = fields.Title
	article.Body = fields.Body
	article.Status = fields.Status
	article.UpdatedAt = time.Now()
	f.articles[id] = article
	return nil
}

func (f *fakeArticleRepo) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	// Absent ids succeed, like the store's idempotent delete.
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id string) (*domain.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, errors.New("article not found")
	}
	return &article, nil
}

func (f *fakeArticleRepo) List(_ context.Context) ([]domain.Article, error) {
	out := make([]domain.Article, 0, len(f.articles))
	for _, article := range f.articles {
		out = append(out, article)
	}
	return out, nil
}

type fakeFlagRepo struct {
	createCalls int
	setCalls    int
	listCalls   int

	flags map[string]domain.FeatureFlag
	order []string
	seq   int

	failSet error
}

func newFakeFlagRepo() *fakeFlagRepo {
	return &fakeFlagRepo{flags: make(map[string]domain.FeatureFlag)}
}

func (f *fakeFlagRepo) Create(_ context.Context, flag *domain.FeatureFlag) error {
	f.createCalls++
	f.seq++
	flag.ID = fmt.Sprintf("flag-%d", f.seq)
	flag.CreatedAt = time.Now()
	f.flags[flag.ID] = *flag
	f.order = append(f.order, flag.ID)
	return nil
}

func (f *fakeFlagRepo) SetEnabled(_ context.Context, id string, enabled bool) error {
	f.setCalls++
	if f.failSet != nil {
		return f.failSet
	}
	flag, ok := f.flags[id]
	if !ok {
		return errors.New("flag not found")
	}
	flag.Enabled = enabled
	f.flags[id] = flag
	return nil
}

func (f *fakeFlagRepo) GetByID(_ context.Context, id string) (*domain.FeatureFlag, error) {
	flag, ok := f.flags[id]
	if !ok {
		return nil, errors.New("flag not found")
	}
	return &flag, nil
}

func (f *fakeFlagRepo) List(_ context.Context) ([]domain.FeatureFlag, error) {
	f.listCalls++
	out := make([]domain.FeatureFlag, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.flags[id])
	}
	return out, nil
}

type fakeBugReportRepo struct {
	createCalls int
	reports     []domain.BugReport
	seq         int
}

func (f *fakeBugReportRepo) Create(_ context.Context, report *domain.BugReport) error {
	f.createCalls++
	f.seq++
	report.ID = fmt.Sprintf("report-%d", f.seq)
	report.CreatedAt = time.Now()
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeBugReportRepo) List(_ context.Context) ([]domain.BugReport, error) {
	out := make([]domain.BugReport, len(f.reports))
	copy(out, f.reports)
	return out, nil
}

// captureDispatcher records published events for assertions.
type captureDispatcher struct {
	published []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}
