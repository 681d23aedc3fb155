package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/client/quota"
	"github.com/avolkov/recondesk/internal/common"
	"github.com/avolkov/recondesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countAnswer struct {
	count int
	err   error
}

// fakeKeys feeds KeyCount answers in order, so the pre-admission and
// post-completion refreshes can be told apart.
type fakeKeys struct {
	answers []countAnswer
	calls   int
}

func (f *fakeKeys) KeyCount(_ context.Context, _ string) (int, error) {
	if f.calls >= len(f.answers) {
		return 0, errors.New("unexpected KeyCount call")
	}
	a := f.answers[f.calls]
	f.calls++
	return a.count, a.err
}

func (f *fakeKeys) GenerateKey(_ context.Context, _, _ string, _ models.KeyType) (string, error) {
	return "", errors.New("not wired")
}
func (f *fakeKeys) ListKeys(_ context.Context, _, _ string) ([]models.ApiKey, error) {
	return nil, errors.New("not wired")
}
func (f *fakeKeys) AllKeys(_ context.Context, _ string) ([]models.ApiKey, error) {
	return nil, errors.New("not wired")
}
func (f *fakeKeys) IncrementKeyCount(_ context.Context, _, _ string) error {
	return errors.New("not wired")
}

type fakeScans struct {
	record *models.ScanRecord
	err    error
	calls  int

	tool, domain, key string
}

func (f *fakeScans) ExecuteScan(_ context.Context, tool, domain, key string) (*models.ScanRecord, error) {
	f.calls++
	f.tool, f.domain, f.key = tool, domain, key
	return f.record, f.err
}

func (f *fakeScans) ScanHistory(_ context.Context, _ string, _ int) ([]models.ScanRecord, error) {
	return nil, errors.New("not wired")
}
func (f *fakeScans) ScanResult(_ context.Context, _ int64, _ string) (*models.ScanRecord, error) {
	return nil, errors.New("not wired")
}

func newTestWorkflow(scans *fakeScans, keys *fakeKeys) *Workflow {
	return NewWorkflow(scans, quota.NewTracker(keys, logging.Discard()), logging.Discard())
}

func freeKey(count int) models.ApiKey {
	return models.ApiKey{ID: 1, Key: "key-free-1", Type: models.KeyTypeFree, Count: count}
}

func TestWorkflow_Run_ValidationFailures(t *testing.T) {
	paid := &models.Principal{Username: "bob", IsPaid: true}

	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{
			name:  "empty domain",
			req:   NewRequest("", "dig", freeKey(0)),
			field: "domain",
		},
		{
			name:  "malformed domain",
			req:   NewRequest("not a domain", "dig", freeKey(0)),
			field: "domain",
		},
		{
			name:  "unknown tool",
			req:   NewRequest("example.com", "metasploit", freeKey(0)),
			field: "tool",
		},
		{
			name:  "missing key",
			req:   NewRequest("example.com", "dig", models.ApiKey{}),
			field: "api_key",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scans := &fakeScans{}
			keys := &fakeKeys{}
			w := newTestWorkflow(scans, keys)

			res, err := w.Run(context.Background(), paid, tc.req)
			require.Error(t, err)
			assert.Nil(t, res)

			var fieldErrs common.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Contains(t, fieldErrs, tc.field)

			// Validation failures never reach the network.
			assert.Zero(t, scans.calls)
			assert.Zero(t, keys.calls)
			assert.Equal(t, StateFailed, w.State())
		})
	}
}

func TestWorkflow_Run_PaidToolDeniedForFreeUser(t *testing.T) {
	scans := &fakeScans{}
	keys := &fakeKeys{}
	w := newTestWorkflow(scans, keys)

	freeUser := &models.Principal{Username: "alice"}
	res, err := w.Run(context.Background(), freeUser, NewRequest("example.com", "sslscan", freeKey(0)))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Zero(t, scans.calls)
	assert.Zero(t, keys.calls)
}

func TestWorkflow_Run_QuotaDenied(t *testing.T) {
	scans := &fakeScans{}
	// The client's cached count is stale; the authority reports the key
	// exhausted, and the authoritative value decides.
	keys := &fakeKeys{answers: []countAnswer{{count: 15}}}
	w := newTestWorkflow(scans, keys)

	user := &models.Principal{Username: "alice"}
	res, err := w.Run(context.Background(), user, NewRequest("example.com", "dig", freeKey(3)))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, common.ErrQuotaExceeded)
	assert.Zero(t, scans.calls)
	assert.Equal(t, StateFailed, w.State())
}

func TestWorkflow_Run_RefreshFailureBlocksSubmission(t *testing.T) {
	scans := &fakeScans{}
	keys := &fakeKeys{answers: []countAnswer{{err: errors.New("backend down")}}}
	w := newTestWorkflow(scans, keys)

	user := &models.Principal{Username: "alice"}
	_, err := w.Run(context.Background(), user, NewRequest("example.com", "dig", freeKey(0)))
	require.Error(t, err)
	assert.Zero(t, scans.calls)
}

func TestWorkflow_Run_Success(t *testing.T) {
	rec := &models.ScanRecord{ID: 42, Tool: "dig", Domain: "example.com", Result: "ok"}
	scans := &fakeScans{record: rec}
	// Pre-admission refresh says 14; post-completion refresh says 15.
	keys := &fakeKeys{answers: []countAnswer{{count: 14}, {count: 15}}}
	w := newTestWorkflow(scans, keys)

	user := &models.Principal{Username: "alice"}
	req := NewRequest("example.com", "dig", freeKey(10))
	res, err := w.Run(context.Background(), user, req)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 1, scans.calls)
	assert.Equal(t, "dig", scans.tool)
	assert.Equal(t, "example.com", scans.domain)
	assert.Equal(t, "key-free-1", scans.key)

	assert.Equal(t, rec, res.Record)
	assert.Equal(t, 15, res.Key.Count)
	assert.Equal(t, 2, keys.calls)
	assert.Equal(t, StateCompleted, w.State())
}

func TestWorkflow_Run_PostRefreshFailureDegradesDisplayOnly(t *testing.T) {
	rec := &models.ScanRecord{ID: 7, Tool: "dig", Domain: "example.com"}
	scans := &fakeScans{record: rec}
	keys := &fakeKeys{answers: []countAnswer{{count: 14}, {err: errors.New("backend down")}}}
	w := newTestWorkflow(scans, keys)

	user := &models.Principal{Username: "alice"}
	res, err := w.Run(context.Background(), user, NewRequest("example.com", "dig", freeKey(10)))
	require.NoError(t, err)
	require.NotNil(t, res)

	// The scan succeeded; the key falls back to the pre-admission count.
	assert.Equal(t, 14, res.Key.Count)
	assert.Equal(t, StateCompleted, w.State())
}

func TestWorkflow_Run_RemoteFailureSurfacesVerbatim(t *testing.T) {
	remoteErr := errors.New("scan tool crashed")
	scans := &fakeScans{err: remoteErr}
	keys := &fakeKeys{answers: []countAnswer{{count: 0}}}
	w := newTestWorkflow(scans, keys)

	user := &models.Principal{Username: "alice"}
	res, err := w.Run(context.Background(), user, NewRequest("example.com", "dig", freeKey(0)))
	require.ErrorIs(t, err, remoteErr)
	assert.Nil(t, res)
	assert.Equal(t, StateFailed, w.State())
}

func TestWorkflow_Run_PaidKeyUnlimitedAdmission(t *testing.T) {
	rec := &models.ScanRecord{ID: 1}
	scans := &fakeScans{record: rec}
	keys := &fakeKeys{answers: []countAnswer{{count: 5000}, {count: 5001}}}
	w := newTestWorkflow(scans, keys)

	user := &models.Principal{Username: "bob", IsPaid: true}
	key := models.ApiKey{ID: 2, Key: "key-paid-1", Type: models.KeyTypePaid}
	res, err := w.Run(context.Background(), user, NewRequest("example.com", "nuclei", key))
	require.NoError(t, err)
	assert.Equal(t, 5001, res.Key.Count)
}

func TestResult_Matches(t *testing.T) {
	req := NewRequest("example.com", "dig", freeKey(0))
	res := &Result{Request: req}

	assert.True(t, res.Matches("example.com", "dig", "key-free-1"))
	assert.True(t, res.Matches("  example.com ", "dig", "key-free-1"))

	assert.False(t, res.Matches("other.com", "dig", "key-free-1"))
	assert.False(t, res.Matches("example.com", "nmap", "key-free-1"))
	assert.False(t, res.Matches("example.com", "dig", "key-free-2"))
}

func TestNewRequest_AssignsUniqueIDs(t *testing.T) {
	a := NewRequest("example.com", "dig", freeKey(0))
	b := NewRequest("example.com", "dig", freeKey(0))
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "example.com", NewRequest(" example.com ", "dig", freeKey(0)).Domain)
}
