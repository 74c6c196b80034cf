package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"news-remix/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type statusUpdate struct {
	id     string
	status domain.ProcessingStatus
	msg    string
}

// fakeArticleRepo is an in-memory ArticleRepository with URL-conflict
// semantics matching the real store.
type fakeArticleRepo struct {
	stored     []*domain.Article
	todayCount int
	countErr   error
	saveErr    error
	findErr    error

	statusUpdates []statusUpdate
	transformed   []*domain.Article
	audio         map[string][]byte
	explanations  map[string]string
	deleted       []string
	cleanupKeep   []int
}

func newFakeArticleRepo(articles ...*domain.Article) *fakeArticleRepo {
	return &fakeArticleRepo{
		stored:       append([]*domain.Article{}, articles...),
		audio:        map[string][]byte{},
		explanations: map[string]string{},
	}
}

func (f *fakeArticleRepo) SaveAll(ctx context.Context, articles []*domain.Article) ([]*domain.Article, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}

	byURL := map[string]*domain.Article{}
	for _, a := range f.stored {
		byURL[a.URL] = a
	}

	var result []*domain.Article
	for _, a := range articles {
		if existing, ok := byURL[a.URL]; ok {
			result = append(result, existing)
			continue
		}
		f.stored = append(f.stored, a)
		byURL[a.URL] = a
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeArticleRepo) FindByCategory(ctx context.Context, filter domain.CategoryFilter, limit int) ([]*domain.Article, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []*domain.Article
	for _, a := range f.stored {
		if filter.All() || a.Category == filter.Name() {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeArticleRepo) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.stored {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (f *fakeArticleRepo) CountFetchedSince(ctx context.Context, since time.Time, filter domain.CategoryFilter) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.todayCount, nil
}

func (f *fakeArticleRepo) UpdateTransform(ctx context.Context, article *domain.Article) error {
	f.transformed = append(f.transformed, article)
	for i, a := range f.stored {
		if a.ID == article.ID {
			copied := *article
			f.stored[i] = &copied
		}
	}
	return nil
}

func (f *fakeArticleRepo) UpdateRewrite(ctx context.Context, article *domain.Article) error {
	f.statusUpdates = append(f.statusUpdates, statusUpdate{id: article.ID, status: article.ProcessingStatus})
	for _, a := range f.stored {
		if a.ID == article.ID {
			a.Title = article.Title
			a.Content = article.Content
			a.OriginalTitle = article.OriginalTitle
			a.OriginalContent = article.OriginalContent
			a.Bias = article.Bias
			a.ProcessingStatus = article.ProcessingStatus
			a.ProcessingError = ""
		}
	}
	return nil
}

func (f *fakeArticleRepo) UpdateGeneratedImage(ctx context.Context, id, imageURL string, status domain.ProcessingStatus) error {
	f.statusUpdates = append(f.statusUpdates, statusUpdate{id: id, status: status})
	for _, a := range f.stored {
		if a.ID == id {
			a.GeneratedImageURL = imageURL
			a.ProcessingStatus = status
			a.ProcessingError = ""
		}
	}
	return nil
}

func (f *fakeArticleRepo) UpdateStatus(ctx context.Context, id string, status domain.ProcessingStatus, msg string) error {
	f.statusUpdates = append(f.statusUpdates, statusUpdate{id: id, status: status, msg: msg})
	for _, a := range f.stored {
		if a.ID == id {
			a.ProcessingStatus = status
			a.ProcessingError = msg
		}
	}
	return nil
}

func (f *fakeArticleRepo) UpdateExplanation(ctx context.Context, id, explanation string) error {
	f.explanations[id] = explanation
	return nil
}

func (f *fakeArticleRepo) UpdateAudio(ctx context.Context, id string, audio []byte) error {
	f.audio[id] = audio
	return nil
}

func (f *fakeArticleRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	for i, a := range f.stored {
		if a.ID == id {
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			return nil
		}
	}
	return domain.ErrArticleNotFound
}

func (f *fakeArticleRepo) CleanupKeeping(ctx context.Context, keep int) (int64, error) {
	f.cleanupKeep = append(f.cleanupKeep, keep)

	sort.SliceStable(f.stored, func(i, j int) bool {
		return f.stored[i].PublishedAt.After(f.stored[j].PublishedAt)
	})
	if len(f.stored) <= keep {
		return 0, nil
	}
	deleted := int64(len(f.stored) - keep)
	f.stored = f.stored[:keep]
	return deleted, nil
}

// fakeNewsRepo serves canned per-category results.
type fakeNewsRepo struct {
	results map[string][]*domain.Article
	errs    map[string]error
	calls   []string
}

func (f *fakeNewsRepo) FetchCategory(ctx context.Context, category string, size int) ([]*domain.Article, error) {
	f.calls = append(f.calls, category)
	if err, ok := f.errs[category]; ok {
		return nil, err
	}
	return f.results[category], nil
}

// fakeRewriteRepo prefixes inputs so tests can see what was rewritten.
type fakeRewriteRepo struct {
	titleErr     error
	contentErr   error
	imageErr     error
	explainErr   error
	titleCalls   []string
	contentCalls []string
	imageCalls   int
	explainCalls int
}

func (f *fakeRewriteRepo) RewriteTitle(ctx context.Context, title string, bias domain.Bias) (string, error) {
	f.titleCalls = append(f.titleCalls, title)
	if f.titleErr != nil {
		return "", f.titleErr
	}
	return string(bias) + ":" + title, nil
}

func (f *fakeRewriteRepo) RewriteContent(ctx context.Context, content, title string, bias domain.Bias) (string, error) {
	f.contentCalls = append(f.contentCalls, content)
	if f.contentErr != nil {
		return "", f.contentErr
	}
	return string(bias) + ":" + content, nil
}

func (f *fakeRewriteRepo) GenerateImage(ctx context.Context, title, content string) (string, error) {
	f.imageCalls++
	if f.imageErr != nil {
		return "", f.imageErr
	}
	return "https://img.example.com/gen.png", nil
}

func (f *fakeRewriteRepo) GenerateExplanation(ctx context.Context, title, content string, bias domain.Bias) (string, error) {
	f.explainCalls++
	if f.explainErr != nil {
		return "", f.explainErr
	}
	return "explained:" + title, nil
}

// fakeSpeechRepo returns fixed audio bytes.
type fakeSpeechRepo struct {
	err   error
	calls []string
}

func (f *fakeSpeechRepo) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(bytes.NewReader([]byte("audio:" + text))), nil
}

func (f *fakeSpeechRepo) SynthesizeBytes(ctx context.Context, text string) ([]byte, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("audio:" + text), nil
}

// fakeLockRepo tracks acquire/release ordering.
type fakeLockRepo struct {
	busy     bool
	err      error
	acquired []string
	released []string
}

func (f *fakeLockRepo) Acquire(ctx context.Context, articleID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.acquired = append(f.acquired, articleID)
	return !f.busy, nil
}

func (f *fakeLockRepo) Release(ctx context.Context, articleID string) error {
	f.released = append(f.released, articleID)
	return nil
}
