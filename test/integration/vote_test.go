package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mtar786/votingApp/internal/core/domain"
)

func TestVoteValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := app.createUserAndToken(t)

	resp := postJSON(t, app, "/api/polls", token, map[string]any{
		"question": "Q?", "options": []string{"A", "B"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var poll domain.Poll
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&poll))
	resp.Body.Close()

	votePath := fmt.Sprintf("/api/polls/%s/vote", poll.ID)

	t.Run("missing choice", func(t *testing.T) {
		resp := postJSON(t, app, votePath, token, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("out of range choice", func(t *testing.T) {
		resp := postJSON(t, app, votePath, token, map[string]any{"choice": 5})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unknown poll", func(t *testing.T) {
		resp := postJSON(t, app, "/api/polls/5cbe8a60-0000-0000-0000-000000000000/vote", token, map[string]any{"choice": 0})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("state unchanged after rejected votes", func(t *testing.T) {
		var count int
		require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM poll_voters WHERE poll_id = $1", poll.ID).Scan(&count))
		assert.Equal(t, 0, count)
	})
}

// TestConcurrentVotes issues simultaneous votes from distinct users against
// one poll and checks for lost updates and duplicate voter records.
func TestConcurrentVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, creatorToken := app.createUserAndToken(t)

	resp := postJSON(t, app, "/api/polls", creatorToken, map[string]any{
		"question": "Concurrent?", "options": []string{"A", "B", "C"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var poll domain.Poll
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&poll))
	resp.Body.Close()

	const voters = 20
	tokens := make([]string, voters)
	for i := range tokens {
		_, tokens[i] = app.createUserAndToken(t)
	}

	votePath := fmt.Sprintf("/api/polls/%s/vote", poll.ID)
	var wg sync.WaitGroup
	statuses := make(chan int, voters)

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := postJSON(t, app, votePath, tokens[i], map[string]any{"choice": i % 3})
			statuses <- resp.StatusCode
			resp.Body.Close()
		}(i)
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		assert.Equal(t, http.StatusOK, status)
	}

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/polls/%s", app.Server.URL, poll.ID))
	require.NoError(t, err)
	var final domain.Poll
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&final))
	resp.Body.Close()

	assert.Len(t, final.Voters, voters)
	assert.Equal(t, voters, final.TotalVotes())

	var dbVotes int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM poll_voters WHERE poll_id = $1", poll.ID).Scan(&dbVotes))
	assert.Equal(t, voters, dbVotes)
}

// TestConcurrentDuplicateVotes races the same user against one poll; exactly
// one attempt may win.
func TestConcurrentDuplicateVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := app.createUserAndToken(t)

	resp := postJSON(t, app, "/api/polls", token, map[string]any{
		"question": "Race?", "options": []string{"A", "B"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var poll domain.Poll
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&poll))
	resp.Body.Close()

	votePath := fmt.Sprintf("/api/polls/%s/vote", poll.ID)

	const attempts = 10
	var wg sync.WaitGroup
	statuses := make(chan int, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := postJSON(t, app, votePath, token, map[string]any{"choice": 0})
			statuses <- resp.StatusCode
			resp.Body.Close()
		}()
	}
	wg.Wait()
	close(statuses)

	succeeded := 0
	for status := range statuses {
		if status == http.StatusOK {
			succeeded++
		} else {
			assert.Equal(t, http.StatusBadRequest, status)
		}
	}
	assert.Equal(t, 1, succeeded)

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/polls/%s", app.Server.URL, poll.ID))
	require.NoError(t, err)
	var final domain.Poll
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&final))
	resp.Body.Close()

	assert.Equal(t, []int{1, 0}, final.Tally)
	assert.Len(t, final.Voters, 1)
}
