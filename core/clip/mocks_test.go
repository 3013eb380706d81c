package clip

import (
	"context"

	"clipper-app-api/core/domain"
)

// mockClipStorage is a mock implementation of ClipStorage backed by a map of slices
type mockClipStorage struct {
	clips map[string][]domain.Clipped

	listFunc   func(ctx context.Context, owner string) ([]domain.Clipped, error)
	saveFunc   func(ctx context.Context, owner string, clip domain.Clipped) error
	deleteFunc func(ctx context.Context, owner string, indicator domain.ClippedIndicator) error

	saveCalls   int
	deleteCalls int
}

func newMockClipStorage() *mockClipStorage {
	return &mockClipStorage{clips: make(map[string][]domain.Clipped)}
}

func (m *mockClipStorage) List(ctx context.Context, owner string) ([]domain.Clipped, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, owner)
	}
	out := make([]domain.Clipped, len(m.clips[owner]))
	copy(out, m.clips[owner])
	return out, nil
}

func (m *mockClipStorage) Save(ctx context.Context, owner string, clip domain.Clipped) error {
	m.saveCalls++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, owner, clip)
	}
	m.clips[owner] = append(m.clips[owner], clip)
	return nil
}

func (m *mockClipStorage) Delete(ctx context.Context, owner string, indicator domain.ClippedIndicator) error {
	m.deleteCalls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, owner, indicator)
	}
	kept := m.clips[owner][:0]
	for _, c := range m.clips[owner] {
		if !IndicatesItem(indicator, c) {
			kept = append(kept, c)
		}
	}
	m.clips[owner] = kept
	return nil
}

// mockLogger records messages
type mockLogger struct {
	messages []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) { l.messages = append(l.messages, msg) }
func (l *mockLogger) Info(msg string, fields map[string]interface{})  { l.messages = append(l.messages, msg) }
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.messages = append(l.messages, msg) }
func (l *mockLogger) Error(msg string, fields map[string]interface{}) { l.messages = append(l.messages, msg) }
