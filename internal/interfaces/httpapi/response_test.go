package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_DraftConflicts(t *testing.T) {
	cases := []struct {
		err        error
		wantCode   int
		wantReason string
	}{
		{fmt.Errorf("%w: lg_1", draft.ErrAlreadyStarted), http.StatusConflict, "draftAlreadyStarted"},
		{fmt.Errorf("%w: pl_1", draft.ErrPlayerAlreadyTaken), http.StatusConflict, "playerAlreadyTaken"},
		{fmt.Errorf("%w: expected 3", draft.ErrStalePickNumber), http.StatusConflict, "stalePickNumber"},
		{draft.ErrConcurrentPick, http.StatusConflict, "concurrentPick"},
		{draft.ErrNotYourTurn, http.StatusConflict, "notYourTurn"},
		{draft.ErrDraftComplete, http.StatusConflict, "draftNotAcceptingPicks"},
		{draft.ErrOddParticipantCount, http.StatusBadRequest, "draftNotStartable"},
		{usecase.ErrForbidden, http.StatusForbidden, "forbidden"},
	}

	for _, tc := range cases {
		mapped := mapError(context.Background(), tc.err)
		if mapped.HTTPStatus != tc.wantCode || mapped.Reason != tc.wantReason {
			t.Fatalf("mapError(%v) = %d/%s, want %d/%s",
				tc.err, mapped.HTTPStatus, mapped.Reason, tc.wantCode, tc.wantReason)
		}
	}
}
