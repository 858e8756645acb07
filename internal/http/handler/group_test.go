package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"groupbook.app/concierge/internal/http/handler"
	"groupbook.app/concierge/internal/vote"
)

var _ = Describe("GroupHandler", func() {
	var (
		router   *gin.Engine
		registry *vote.Registry
		log      *vote.Log
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		registry = vote.NewRegistry()
		log = vote.NewLog()
		h := handler.NewGroupHandler(log, vote.NewTally(registry, log))
		router.POST("/groups/:group_id/messages", h.PostMessage)
		router.GET("/groups/:group_id/votes/results", h.VoteResults)
	})

	postMessage := func(groupID, sender, text string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"sender": sender, "text": text})
		req := httptest.NewRequest(http.MethodPost, "/groups/"+groupID+"/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("accepts group messages and appends them to the log", func() {
		w := postMessage("grp-1", "alice", "hello all")

		Expect(w.Code).To(Equal(http.StatusAccepted))
		Expect(log.Len()).To(Equal(1))
		Expect(log.Snapshot()[0]).To(Equal(vote.Message{GroupID: "grp-1", Sender: "alice", Text: "hello all"}))
	})

	It("returns 400 when sender is missing", func() {
		body, _ := json.Marshal(map[string]string{"text": "hello"})
		req := httptest.NewRequest(http.MethodPost, "/groups/grp-1/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("reports no_votes_found for a silent group", func() {
		req := httptest.NewRequest(http.MethodGet, "/groups/grp-1/votes/results", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["status"]).To(Equal("no_votes_found"))
	})

	It("tallies vote clicks posted as group messages", func() {
		london := registry.Register("Location: London")
		beijing := registry.Register("Location: Beijing")

		for i := 0; i < 3; i++ {
			Expect(postMessage("grp-1", "voter", london).Code).To(Equal(http.StatusAccepted))
		}
		Expect(postMessage("grp-1", "voter", beijing).Code).To(Equal(http.StatusAccepted))
		// Ordinary chatter is recorded but not tallied.
		Expect(postMessage("grp-1", "voter", "can't wait!").Code).To(Equal(http.StatusAccepted))

		req := httptest.NewRequest(http.MethodGet, "/groups/grp-1/votes/results", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp struct {
			Status         string            `json:"status"`
			Results        map[string]int    `json:"results"`
			WinningOptions map[string]string `json:"winning_options"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Status).To(Equal("vote_results"))
		Expect(resp.Results).To(HaveKeyWithValue("Location: London", 3))
		Expect(resp.Results).To(HaveKeyWithValue("Location: Beijing", 1))
		Expect(resp.WinningOptions).To(HaveKeyWithValue("location", "London"))
	})

	It("keeps tallies separate per group", func() {
		paris := registry.Register("Location: Other")
		Expect(postMessage("grp-2", "voter", paris).Code).To(Equal(http.StatusAccepted))

		req := httptest.NewRequest(http.MethodGet, "/groups/grp-1/votes/results", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["status"]).To(Equal("no_votes_found"))
	})
})
