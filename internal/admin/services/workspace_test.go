package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhanya-017/infinart-admin/internal/admin/api"
	"github.com/dhanya-017/infinart-admin/internal/admin/models"
	"github.com/dhanya-017/infinart-admin/internal/logging"
)

// ------------ fakes ------------

type fakeClient struct {
	mu sync.Mutex

	pendingOut   []models.Item
	pendingErr   error
	pendingCalls int

	approveCalls []string
	approveErr   error
	approveHook  func()

	rejectCalls   []string
	rejectReasons []string
	rejectErr     error

	deleteCalls []string
	deleteErr   error

	sellersOut []models.Seller
	sellersErr error

	sellerItemsOut []models.Item
	sellerItemsErr error
	sellerItemsID  string
}

func (f *fakeClient) Login(context.Context, string, []byte) (string, error) { return "", nil }
func (f *fakeClient) Verify(context.Context) error                          { return nil }

func (f *fakeClient) PendingItems(context.Context) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingCalls++
	return f.pendingOut, f.pendingErr
}

func (f *fakeClient) ApproveItem(_ context.Context, id string) error {
	f.mu.Lock()
	f.approveCalls = append(f.approveCalls, id)
	hook := f.approveHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.approveErr
}

func (f *fakeClient) RejectItem(_ context.Context, id string, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectCalls = append(f.rejectCalls, id)
	f.rejectReasons = append(f.rejectReasons, reason)
	return f.rejectErr
}

func (f *fakeClient) DeleteItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func (f *fakeClient) Sellers(context.Context) ([]models.Seller, error) {
	return f.sellersOut, f.sellersErr
}

func (f *fakeClient) SellerItems(_ context.Context, sellerID string) ([]models.Item, error) {
	f.sellerItemsID = sellerID
	return f.sellerItemsOut, f.sellerItemsErr
}

type fakePrompter struct {
	confirmAnswer bool
	confirmCalls  int

	textAnswer string
	textOK     bool
	textCalls  int
}

func (f *fakePrompter) Confirm(string) (bool, error) {
	f.confirmCalls++
	return f.confirmAnswer, nil
}

func (f *fakePrompter) PromptText(string) (string, bool, error) {
	f.textCalls++
	return f.textAnswer, f.textOK, nil
}

type fakeSessions struct {
	mu     sync.Mutex
	forced int
}

func (f *fakeSessions) ForceLogout(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forced++
}

func (f *fakeSessions) forcedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forced
}

// ------------ helpers ------------

func pendingItems(ids ...string) []models.Item {
	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.Item{ID: id, Name: "item-" + id, Status: models.StatusPending})
	}
	return items
}

func itemIDs(items []models.Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func newLoadedWorkspace(t *testing.T, client *fakeClient, prompter *fakePrompter, sessions *fakeSessions) *Workspace {
	t.Helper()
	w := NewWorkspace(client, prompter, sessions, logging.NewDefault())
	w.Load(context.Background())
	require.Empty(t, w.ErrorMessage())
	return w
}

// ------------ Load ------------

func TestLoad_Success_ReplacesWorkingSet(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a", "b", "c")}
	w := NewWorkspace(client, &fakePrompter{}, &fakeSessions{}, logging.NewDefault())

	w.Load(context.Background())

	require.False(t, w.Loading())
	require.Empty(t, w.ErrorMessage())
	require.Equal(t, []string{"a", "b", "c"}, itemIDs(w.Items()))
}

func TestLoad_Failure_SetsGenericMessage(t *testing.T) {
	client := &fakeClient{pendingErr: api.ErrUnavailable}
	w := NewWorkspace(client, &fakePrompter{}, &fakeSessions{}, logging.NewDefault())

	w.Load(context.Background())

	require.False(t, w.Loading())
	require.Equal(t, FetchFailureMessage, w.ErrorMessage())
	require.Empty(t, w.Items())
}

func TestLoad_SuccessAfterFailure_ClearsMessage(t *testing.T) {
	client := &fakeClient{pendingErr: api.ErrUnavailable}
	w := NewWorkspace(client, &fakePrompter{}, &fakeSessions{}, logging.NewDefault())
	ctx := context.Background()

	w.Load(ctx)
	require.Equal(t, FetchFailureMessage, w.ErrorMessage())

	client.mu.Lock()
	client.pendingErr = nil
	client.pendingOut = pendingItems("a")
	client.mu.Unlock()

	w.Load(ctx)
	require.Empty(t, w.ErrorMessage())
	require.Equal(t, []string{"a"}, itemIDs(w.Items()))
}

func TestLoad_AuthFailure_ForcesLogout(t *testing.T) {
	sessions := &fakeSessions{}
	client := &fakeClient{pendingErr: api.ErrUnauthorized}
	w := NewWorkspace(client, &fakePrompter{}, sessions, logging.NewDefault())

	w.Load(context.Background())

	require.Equal(t, FetchFailureMessage, w.ErrorMessage())
	require.Equal(t, 1, sessions.forcedCount())
}

func TestLoad_AfterClose_DiscardsResult(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a")}
	w := NewWorkspace(client, &fakePrompter{}, &fakeSessions{}, logging.NewDefault())

	w.Close()
	w.Load(context.Background())

	require.Empty(t, w.Items())
	require.Empty(t, w.ErrorMessage())
}

// ------------ action contract ------------

func TestApprove_Success_RemovesIDPreservingOrder(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a", "b", "c")}
	w := newLoadedWorkspace(t, client, &fakePrompter{}, &fakeSessions{})

	require.NoError(t, w.Approve(context.Background(), "b"))

	require.Equal(t, []string{"b"}, client.approveCalls)
	require.Equal(t, []string{"a", "c"}, itemIDs(w.Items()))
}

func TestApprove_Failure_LeavesItemsUnchanged(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a", "b"), approveErr: api.ErrRejected}
	w := newLoadedWorkspace(t, client, &fakePrompter{}, &fakeSessions{})
	before := w.Items()

	err := w.Approve(context.Background(), "a")
	require.ErrorIs(t, err, api.ErrRejected)
	require.Equal(t, before, w.Items())
}

func TestApprove_UnknownID_NoRemoteCall(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a")}
	w := newLoadedWorkspace(t, client, &fakePrompter{}, &fakeSessions{})

	err := w.Approve(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUnknownItem)
	require.Empty(t, client.approveCalls)
}

func TestReject_Success_AttachesReason(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a", "b")}
	prompter := &fakePrompter{textAnswer: "low quality", textOK: true}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})

	require.NoError(t, w.Reject(context.Background(), "b"))

	require.Equal(t, []string{"b"}, client.rejectCalls)
	require.Equal(t, []string{"low quality"}, client.rejectReasons)
	require.Equal(t, []string{"a"}, itemIDs(w.Items()))
}

func TestReject_EmptyReason_AbortsBeforeRemoteCall(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a")}
	prompter := &fakePrompter{textAnswer: "   ", textOK: true}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})

	require.NoError(t, w.Reject(context.Background(), "a"))

	require.Empty(t, client.rejectCalls)
	require.Equal(t, []string{"a"}, itemIDs(w.Items()))
}

func TestReject_CancelledPrompt_AbortsBeforeRemoteCall(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a")}
	prompter := &fakePrompter{textOK: false}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})

	require.NoError(t, w.Reject(context.Background(), "a"))

	require.Empty(t, client.rejectCalls)
	require.Equal(t, []string{"a"}, itemIDs(w.Items()))
}

func TestReject_AbortReleasesInFlightSlot(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a")}
	prompter := &fakePrompter{textOK: false}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})
	ctx := context.Background()

	require.NoError(t, w.Reject(ctx, "a"))

	// The aborted action must not leave the id locked.
	prompter.textAnswer, prompter.textOK = "spam", true
	require.NoError(t, w.Reject(ctx, "a"))
	require.Equal(t, []string{"a"}, client.rejectCalls)
}

func TestDelete_Declined_AbortsBeforeRemoteCall(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("x")}
	prompter := &fakePrompter{confirmAnswer: false}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})

	require.NoError(t, w.Delete(context.Background(), "x"))

	require.Equal(t, 1, prompter.confirmCalls)
	require.Empty(t, client.deleteCalls)
	require.Equal(t, []string{"x"}, itemIDs(w.Items()))
}

func TestDelete_NetworkFailure_ItemStaysVisibleAndActionable(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("x"), deleteErr: api.ErrUnavailable}
	prompter := &fakePrompter{confirmAnswer: true}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})
	ctx := context.Background()

	err := w.Delete(ctx, "x")
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.Equal(t, []string{"x"}, itemIDs(w.Items()))

	// Still actionable: a retry issues a fresh remote call.
	client.mu.Lock()
	client.deleteErr = nil
	client.mu.Unlock()
	require.NoError(t, w.Delete(ctx, "x"))
	require.Equal(t, []string{"x", "x"}, client.deleteCalls)
	require.Empty(t, w.Items())
}

func TestActionSequence_RemovesExactlyActedIDsInOrder(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a", "b", "c", "d", "e")}
	prompter := &fakePrompter{confirmAnswer: true, textAnswer: "counterfeit", textOK: true}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})
	ctx := context.Background()

	require.NoError(t, w.Approve(ctx, "b"))
	require.NoError(t, w.Reject(ctx, "d"))
	require.NoError(t, w.Delete(ctx, "a"))

	require.Equal(t, []string{"c", "e"}, itemIDs(w.Items()))
}

func TestScenario_ApproveThenRejectEmptiesWorkingSet(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("A", "B")}
	prompter := &fakePrompter{textAnswer: "low quality", textOK: true}
	w := newLoadedWorkspace(t, client, prompter, &fakeSessions{})
	ctx := context.Background()

	require.NoError(t, w.Approve(ctx, "A"))
	require.Equal(t, []string{"B"}, itemIDs(w.Items()))

	require.NoError(t, w.Reject(ctx, "B"))
	require.Empty(t, w.Items())
}

func TestAction_AuthFailure_ForcesLogout(t *testing.T) {
	sessions := &fakeSessions{}
	client := &fakeClient{pendingOut: pendingItems("a"), approveErr: api.ErrUnauthorized}
	w := newLoadedWorkspace(t, client, &fakePrompter{}, sessions)

	err := w.Approve(context.Background(), "a")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Equal(t, 1, sessions.forcedCount())
	require.Equal(t, []string{"a"}, itemIDs(w.Items()))
}

// ------------ in-flight guard and liveness ------------

func TestApprove_DuplicateWhileInFlight_RefusedClientSide(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeClient{pendingOut: pendingItems("a")}
	client.approveHook = func() {
		close(started)
		<-release
	}
	w := newLoadedWorkspace(t, client, &fakePrompter{}, &fakeSessions{})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- w.Approve(ctx, "a") }()
	<-started

	err := w.Approve(ctx, "a")
	require.ErrorIs(t, err, ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)

	// Exactly one remote call was issued.
	require.Equal(t, []string{"a"}, client.approveCalls)
	require.Empty(t, w.Items())
}

func TestAction_ResolutionAfterClose_DoesNotMutate(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeClient{pendingOut: pendingItems("a", "b")}
	client.approveHook = func() {
		close(started)
		<-release
	}
	w := newLoadedWorkspace(t, client, &fakePrompter{}, &fakeSessions{})

	done := make(chan error, 1)
	go func() { done <- w.Approve(context.Background(), "a") }()
	<-started

	w.Close()
	close(release)
	require.NoError(t, <-done)

	// The call completed but the dead view's state was not touched.
	require.Equal(t, []string{"a", "b"}, itemIDs(w.Items()))
}

func TestAction_OnClosedWorkspace_Refused(t *testing.T) {
	client := &fakeClient{pendingOut: pendingItems("a")}
	w := newLoadedWorkspace(t, client, &fakePrompter{}, &fakeSessions{})

	w.Close()
	err := w.Approve(context.Background(), "a")
	require.ErrorIs(t, err, ErrWorkspaceClosed)
	require.Empty(t, client.approveCalls)
}
