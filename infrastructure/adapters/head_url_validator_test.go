package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"animate-frames-lambda/config"
)

func newValidatorForTest() *headURLValidator {
	return NewHeadURLValidator(&config.FetcherConfig{
		ProbeTimeout: 2 * time.Second,
	}, NewZerologWrapper()).(*headURLValidator)
}

func TestHeadURLValidator_ReachableURL(t *testing.T) {
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	validator := newValidatorForTest()

	assert.True(t, validator.Validate(context.Background(), server.URL+"/frame.png"))
	assert.Equal(t, http.MethodHead, method)
}

func TestHeadURLValidator_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	validator := newValidatorForTest()

	assert.False(t, validator.Validate(context.Background(), server.URL+"/missing.png"))
}

func TestHeadURLValidator_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	validator := newValidatorForTest()

	assert.False(t, validator.Validate(context.Background(), url))
}

func TestHeadURLValidator_UnusableURL(t *testing.T) {
	validator := newValidatorForTest()

	assert.False(t, validator.Validate(context.Background(), "://not-a-url"))
}
