package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"groupbook.app/concierge/internal/http/handler"
)

var _ = Describe("ChatHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTurnService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTurnService{}
		h := handler.NewChatHandler(svc)
		router.POST("/messages", h.Post)
	})

	It("returns 200 with the assistant response", func() {
		var gotUserID, gotPrompt string
		svc.handleFn = func(_ context.Context, userID, prompt string) (string, error) {
			gotUserID = userID
			gotPrompt = prompt
			return "✅ Restaurant reservation confirmed!", nil
		}

		body, _ := json.Marshal(map[string]string{
			"user_id": "user-1",
			"text":    "book a table in London",
		})
		req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotUserID).To(Equal("user-1"))
		Expect(gotPrompt).To(Equal("book a table in London"))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["response"]).To(Equal("✅ Restaurant reservation confirmed!"))
	})

	It("returns 400 on invalid request body", func() {
		req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 when user_id is missing", func() {
		body, _ := json.Marshal(map[string]string{"text": "hello"})
		req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when the turn fails", func() {
		svc.handleFn = func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("model overloaded")
		}

		body, _ := json.Marshal(map[string]string{
			"user_id": "user-1",
			"text":    "hi",
		})
		req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
