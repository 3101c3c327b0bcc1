package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnaura/feedgate/internal/apiclient"
	"github.com/learnaura/feedgate/internal/feedcache"
	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/domain"
	internal_errors "github.com/learnaura/feedgate/shared/errors"
)

const pageSize = 10

var (
	alice = domain.Credential{Token: "alice-token", User: domain.UserRef{Id: "u1", Name: "alice"}}
	bob   = domain.Credential{Token: "bob-token", User: domain.UserRef{Id: "u2", Name: "bob"}}
	carol = domain.Credential{Token: "carol-token", User: domain.UserRef{Id: "u3", Name: "carol"}}
)

// fakeRemote is an in-memory Remote Feed Store behind httptest, newest
// discussion first, counting calls per endpoint.
type fakeRemote struct {
	mu          sync.Mutex
	discussions []domain.Discussion
	nextId      int
	listCalls   int
	writeCalls  int
}

func newFakeRemote(t *testing.T) (*fakeRemote, *httptest.Server) {
	t.Helper()
	f := &fakeRemote{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /discussion", f.list)
	mux.HandleFunc("POST /discussion", f.create)
	mux.HandleFunc("PUT /discussion/{id}", f.update)
	mux.HandleFunc("DELETE /discussion/{id}", f.delete)
	mux.HandleFunc("POST /discussion/reply", f.createReply)
	mux.HandleFunc("PUT /discussion/reply/{id}", f.updateReply)
	mux.HandleFunc("DELETE /discussion/reply/{id}", f.deleteReply)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return f, server
}

func (f *fakeRemote) seed(d domain.Discussion) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discussions = append([]domain.Discussion{d}, f.discussions...)
}

func (f *fakeRemote) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++

	total := (len(f.discussions) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	start := 0
	end := len(f.discussions)
	if end > pageSize {
		end = pageSize
	}
	json.NewEncoder(w).Encode(api.FeedPageResponse{Discussions: f.discussions[start:end], TotalPages: total})
}

func (f *fakeRemote) create(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCalls++

	var body api.CreateDiscussionRequest
	json.NewDecoder(r.Body).Decode(&body)
	f.nextId++
	created := domain.Discussion{
		Id:        fmt.Sprintf("d%d", f.nextId),
		Title:     body.Title,
		Author:    domain.UserRef{Id: "u1", Name: "alice"},
		CreatedAt: time.Now(),
	}
	f.discussions = append([]domain.Discussion{created}, f.discussions...)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (f *fakeRemote) update(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCalls++

	var body api.UpdateDiscussionRequest
	json.NewDecoder(r.Body).Decode(&body)
	for i := range f.discussions {
		if f.discussions[i].Id == r.PathValue("id") {
			f.discussions[i].Title = body.Title
			json.NewEncoder(w).Encode(f.discussions[i])
			return
		}
	}
	writeNotFound(w)
}

func (f *fakeRemote) delete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCalls++

	for i := range f.discussions {
		if f.discussions[i].Id == r.PathValue("id") {
			f.discussions = append(f.discussions[:i], f.discussions[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	writeNotFound(w)
}

func (f *fakeRemote) createReply(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCalls++

	var body api.CreateReplyRequest
	json.NewDecoder(r.Body).Decode(&body)
	for i := range f.discussions {
		if f.discussions[i].Id == body.DiscussionId {
			f.nextId++
			reply := domain.Reply{
				Id:           fmt.Sprintf("r%d", f.nextId),
				DiscussionId: body.DiscussionId,
				Content:      body.Content,
				Author:       domain.UserRef{Id: "u2", Name: "bob"},
				CreatedAt:    time.Now(),
			}
			f.discussions[i].LatestReply = &reply
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(reply)
			return
		}
	}
	writeNotFound(w)
}

func (f *fakeRemote) updateReply(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCalls++

	var body api.UpdateReplyRequest
	json.NewDecoder(r.Body).Decode(&body)
	for i := range f.discussions {
		if reply := f.discussions[i].LatestReply; reply != nil && reply.Id == r.PathValue("id") {
			reply.Content = body.Content
			json.NewEncoder(w).Encode(reply)
			return
		}
	}
	writeNotFound(w)
}

func (f *fakeRemote) deleteReply(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCalls++

	for i := range f.discussions {
		if reply := f.discussions[i].LatestReply; reply != nil && reply.Id == r.PathValue("id") {
			f.discussions[i].LatestReply = nil
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	writeNotFound(w)
}

func writeNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(api.ErrorResponse{Message: "not found"})
}

func (f *fakeRemote) counts() (lists, writes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.writeCalls
}

func newDispatcher(t *testing.T) (*fakeRemote, *feedcache.Cache, *Dispatcher) {
	t.Helper()
	remote, server := newFakeRemote(t)
	client := apiclient.New(server.URL)
	cache := feedcache.New(client, pageSize, 8)
	return remote, cache, New(client, cache)
}

func TestCreateDiscussion_ValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name  string
		cred  domain.Credential
		title string
	}{
		{"too short after trimming", alice, "  ab  "},
		{"empty", alice, ""},
		{"missing credential", domain.Credential{}, "a valid title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote, _, d := newDispatcher(t)

			_, err := d.CreateDiscussion(context.Background(), tt.cred, 1, tt.title)
			require.Error(t, err)
			assert.True(t, internal_errors.IsValidation(err), "expected a validation error, got %v", err)

			lists, writes := remote.counts()
			assert.Zero(t, lists, "validation failures must not reach the network")
			assert.Zero(t, writes, "validation failures must not reach the network")
		})
	}
}

func TestCreateDiscussion_RefetchesViewedPageOnce(t *testing.T) {
	remote, cache, d := newDispatcher(t)
	_, err := cache.Load(context.Background(), alice, 1)
	require.NoError(t, err)
	listsBefore, _ := remote.counts()

	created, err := d.CreateDiscussion(context.Background(), alice, 1, "how do goroutines work?")
	require.NoError(t, err)

	listsAfter, _ := remote.counts()
	assert.Equal(t, 1, listsAfter-listsBefore, "the viewed page must be refetched exactly once")

	snapshot, ok := cache.Snapshot(1)
	require.True(t, ok)
	_, found := snapshot.FindDiscussion(created.Id)
	assert.True(t, found, "created discussion must appear in the refreshed page")
}

func TestDeleteDiscussion_SecondDeleteIsNonFatal(t *testing.T) {
	remote, cache, d := newDispatcher(t)
	remote.seed(domain.Discussion{Id: "d1", Title: "stale question", Author: alice.User})
	_, err := cache.Load(context.Background(), alice, 1)
	require.NoError(t, err)

	require.NoError(t, d.DeleteDiscussion(context.Background(), alice, 1, "d1"))
	snapshot, _ := cache.Snapshot(1)
	_, found := snapshot.FindDiscussion("d1")
	assert.False(t, found)
	listsAfterFirst, _ := remote.counts()

	// already gone remotely: still succeeds and still refreshes
	require.NoError(t, d.DeleteDiscussion(context.Background(), alice, 1, "d1"))
	listsAfterSecond, _ := remote.counts()
	assert.Equal(t, 1, listsAfterSecond-listsAfterFirst)
	snapshot, _ = cache.Snapshot(1)
	_, found = snapshot.FindDiscussion("d1")
	assert.False(t, found)
}

func TestCreateReply_RequiresCachedDiscussion(t *testing.T) {
	remote, cache, d := newDispatcher(t)
	remote.seed(domain.Discussion{Id: "d1", Title: "a question", Author: alice.User})
	_, err := cache.Load(context.Background(), bob, 1)
	require.NoError(t, err)

	_, err = d.CreateReply(context.Background(), bob, 1, "nope", "a perfectly fine answer")
	require.Error(t, err)
	assert.True(t, internal_errors.IsValidation(err))

	reply, err := d.CreateReply(context.Background(), bob, 1, "d1", "a perfectly fine answer")
	require.NoError(t, err)
	assert.Equal(t, "d1", reply.DiscussionId)

	snapshot, _ := cache.Snapshot(1)
	discussion, found := snapshot.FindDiscussion("d1")
	require.True(t, found)
	require.NotNil(t, discussion.LatestReply)
	assert.Equal(t, reply.Id, discussion.LatestReply.Id)
}

func TestReplyMutations_DualOwnership(t *testing.T) {
	tests := []struct {
		name    string
		cred    domain.Credential
		allowed bool
	}{
		{"reply author may edit", bob, true},
		{"discussion author may edit", alice, true},
		{"third party may not edit", carol, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote, cache, d := newDispatcher(t)
			reply := &domain.Reply{Id: "r1", DiscussionId: "d1", Content: "the latest answer", Author: bob.User}
			remote.seed(domain.Discussion{Id: "d1", Title: "a question", Author: alice.User, LatestReply: reply})
			_, err := cache.Load(context.Background(), tt.cred, 1)
			require.NoError(t, err)
			_, writesBefore := remote.counts()

			_, err = d.UpdateReply(context.Background(), tt.cred, 1, "r1", "an edited answer")
			if tt.allowed {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				var authErr *internal_errors.Authorization
				require.ErrorAs(t, err, &authErr)
				_, writesAfter := remote.counts()
				assert.Equal(t, writesBefore, writesAfter, "gated mutations must not reach the network")
			}

			err = d.DeleteReply(context.Background(), tt.cred, 1, "r1")
			if tt.allowed {
				require.NoError(t, err)
			} else {
				var authErr *internal_errors.Authorization
				require.ErrorAs(t, err, &authErr)
			}
		})
	}
}

func TestMutationFailure_LeavesCacheUntouched(t *testing.T) {
	remote, cache, d := newDispatcher(t)
	remote.seed(domain.Discussion{Id: "d1", Title: "a question", Author: alice.User})
	before, err := cache.Load(context.Background(), alice, 1)
	require.NoError(t, err)

	_, err = d.UpdateDiscussion(context.Background(), alice, 1, "missing", "a brand new title")
	require.Error(t, err)
	var remoteErr *internal_errors.Remote
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.Status)

	after, ok := cache.Snapshot(1)
	require.True(t, ok)
	assert.Equal(t, before, after, "failed mutations must leave the cache untouched")
}
