package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/researchaccelerator-hub/video-insights/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestNewYouTubeDataClient(t *testing.T) {
	tests := []struct {
		name        string
		apiKey      string
		timeout     time.Duration
		wantErr     bool
		wantTimeout time.Duration
	}{
		{
			name:        "valid API key",
			apiKey:      "test-api-key-12345",
			timeout:     5 * time.Second,
			wantTimeout: 5 * time.Second,
		},
		{
			name:        "zero timeout selects default",
			apiKey:      "test-api-key-12345",
			wantTimeout: DefaultCallTimeout,
		},
		{
			name:    "empty API key",
			apiKey:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewYouTubeDataClient(tt.apiKey, tt.timeout)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewYouTubeDataClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				require.NotNil(t, client)
				assert.Equal(t, tt.apiKey, client.apiKey)
				assert.Equal(t, tt.wantTimeout, client.callTimeout)
			}
		})
	}
}

func TestYouTubeDataClient_NotConnected(t *testing.T) {
	client, err := NewYouTubeDataClient("test-key", 0)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.ListCommentThreads(ctx, ThreadFilter{VideoID: "v1"}, "")
	assert.EqualError(t, err, "YouTube client not connected")

	_, err = client.ListVideos(ctx, []string{"v1"}, []string{"snippet"})
	assert.EqualError(t, err, "YouTube client not connected")

	_, err = client.Search(ctx, SearchRequest{Query: "go"}, "")
	assert.EqualError(t, err, "YouTube client not connected")
}

func TestYouTubeDataClient_Disconnect(t *testing.T) {
	client := connectedClient(t, http.NotFoundHandler())

	require.NoError(t, client.Disconnect(context.Background()))
	assert.Nil(t, client.service)
}

// connectedClient points a client at a local fake of the API.
func connectedClient(t *testing.T, handler http.Handler) *YouTubeDataClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewYouTubeDataClient("test-key", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, client.Connect(context.Background(), option.WithEndpoint(srv.URL+"/")))
	return client
}

func TestListCommentThreads_DecodesRepliesAndToken(t *testing.T) {
	client := connectedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/commentThreads"), r.URL.Path)
		assert.Equal(t, "vid-1", r.URL.Query().Get("videoId"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"nextPageToken": "page-2",
			"items": [
				{
					"kind": "youtube#commentThread",
					"id": "T1",
					"snippet": {
						"videoId": "vid-1",
						"canReply": true,
						"isPublic": true,
						"totalReplyCount": 1,
						"topLevelComment": {
							"kind": "youtube#comment",
							"id": "T1",
							"snippet": {
								"authorDisplayName": "alice",
								"authorChannelId": {"value": "UCalice"},
								"textOriginal": "great video",
								"likeCount": 3,
								"publishedAt": "2021-01-02T03:04:05Z"
							}
						}
					},
					"replies": {"comments": [
						{"kind": "youtube#comment", "id": "R1", "snippet": {"parentId": "T1", "textOriginal": "agreed"}}
					]}
				},
				{"kind": "youtube#commentThread", "id": "T2", "snippet": {"totalReplyCount": 0}}
			]
		}`))
	}))

	page, err := client.ListCommentThreads(context.Background(), ThreadFilter{VideoID: "vid-1", MaxResults: 100}, "")
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	require.True(t, page.HasNext())
	assert.Equal(t, "page-2", *page.NextPageToken)

	first := page.Items[0]
	assert.Equal(t, "T1", first.ID)
	assert.Equal(t, int64(1), first.TotalReplyCount())
	require.NotNil(t, first.Snippet.TopLevelComment)
	assert.Equal(t, "UCalice", first.Snippet.TopLevelComment.Snippet.AuthorChannelID)
	assert.Equal(t, int64(3), first.Snippet.TopLevelComment.Snippet.LikeCount)
	require.Len(t, first.InlineReplies(), 1)
	assert.Equal(t, "T1", first.InlineReplies()[0].Snippet.ParentID)

	// absent replies section stays absent
	assert.Nil(t, page.Items[1].Replies)
}

func TestListComments_LastPageHasNoToken(t *testing.T) {
	client := connectedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "T1", r.URL.Query().Get("parentId"))
		assert.Equal(t, "tok", r.URL.Query().Get("pageToken"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"id": "R6"}, {"id": "R7"}]}`))
	}))

	page, err := client.ListComments(context.Background(), CommentFilter{ParentID: "T1", Parts: []string{"id"}}, "tok")
	require.NoError(t, err)

	assert.False(t, page.HasNext())
	assert.Nil(t, page.NextPageToken)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "R7", page.Items[1].ID)
	assert.Nil(t, page.Items[1].Snippet)
}

func TestListVideos_DecodesCounters(t *testing.T) {
	client := connectedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"a", "b"}, r.URL.Query()["id"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [
			{"id": "a", "statistics": {"viewCount": "120", "likeCount": "7"}, "contentDetails": {"duration": "PT1M2S"}},
			{"id": "b", "snippet": {"title": "no stats", "thumbnails": {"default": {"url": "http://img/b"}}}}
		]}`))
	}))

	videos, err := client.ListVideos(context.Background(), []string{"a", "b"}, []string{"snippet", "statistics"})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	require.NotNil(t, videos[0].Statistics)
	assert.Equal(t, uint64(120), *videos[0].Statistics.ViewCount)
	assert.Nil(t, videos[0].Statistics.CommentCount)
	assert.Equal(t, "PT1M2S", videos[0].ContentDetails.Duration)

	assert.Nil(t, videos[1].Statistics)
	assert.Equal(t, "http://img/b", videos[1].Snippet.ThumbnailURL)
}

func TestListVideos_RejectsOversizedBatch(t *testing.T) {
	client := connectedClient(t, http.NotFoundHandler())

	ids := make([]string, MaxIDsPerRequest+1)
	_, err := client.ListVideos(context.Background(), ids, []string{"snippet"})
	assert.Error(t, err)
}

func TestAPIFailureIsClassified(t *testing.T) {
	client := connectedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quotaExceeded"}}`))
	}))

	_, err := client.Search(context.Background(), SearchRequest{Query: "go", Type: "video"}, "")
	require.Error(t, err)

	assert.True(t, errors.Is(err, common.ErrExternalAPI))
	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "search.list", apiErr.Call)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

func TestCallTimeoutBoundsSlowAPI(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client, err := NewYouTubeDataClient("test-key", 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, client.Connect(context.Background(), option.WithEndpoint(srv.URL+"/")))

	_, err = client.ListVideoCategories(context.Background(), "US")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExternalAPI))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
