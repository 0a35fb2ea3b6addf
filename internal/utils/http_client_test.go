// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base url, got %q", client.BaseURL)
	}
	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", got)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected JSON Accept header, got %q", got)
	}
}

func TestNewHTTPClient_ZeroTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost", 0)

	if got := client.GetClient().Timeout; got != 0 {
		t.Errorf("expected no timeout, got %s", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}
