package cloudns

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestShareDomainOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		want       ShareOutcome
		wantDetail string
	}{
		{
			name: "new grant",
			body: `{"status":"Success","statusDescription":"The domain was shared successfully."}`,
			want: OutcomeShared,
		},
		{
			name:       "existing grant",
			body:       `{"status":"Failed","statusDescription":"The domain is already shared with this account"}`,
			want:       OutcomeAlreadyShared,
			wantDetail: "The domain is already shared with this account",
		},
		{
			name:       "existing grant detected case insensitively",
			body:       `{"status":"Failed","statusDescription":"ALREADY SHARED with this account"}`,
			want:       OutcomeAlreadyShared,
			wantDetail: "ALREADY SHARED with this account",
		},
		{
			name:       "rejected domain",
			body:       `{"status":"Failed","statusDescription":"Invalid domain name"}`,
			want:       OutcomeFailed,
			wantDetail: "Invalid domain name",
		},
		{
			name:       "unexpected list body",
			body:       `[1,2]`,
			want:       OutcomeFailed,
			wantDetail: "unexpected list response",
		},
		{
			name:       "object without status",
			body:       `{"ok":true}`,
			want:       OutcomeFailed,
			wantDetail: "unexpected object response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL)

			result, err := client.ShareDomain(context.Background(), "example.com", "ops@example.com")
			if err != nil {
				t.Fatalf("ShareDomain() error = %v", err)
			}
			if result.Outcome != tt.want {
				t.Errorf("Outcome = %v, want %v", result.Outcome, tt.want)
			}
			if result.Domain != "example.com" {
				t.Errorf("Domain = %q, want %q", result.Domain, "example.com")
			}
			if tt.wantDetail != "" && result.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", result.Detail, tt.wantDetail)
			}
		})
	}
}

func TestShareDomainSendsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dns/add-shared-account.json" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/dns/add-shared-account.json")
		}
		if got := r.PostFormValue("domain-name"); got != "example.com" {
			t.Errorf("domain-name = %q, want %q", got, "example.com")
		}
		if got := r.PostFormValue("mail"); got != "ops@example.com" {
			t.Errorf("mail = %q, want %q", got, "ops@example.com")
		}
		fmt.Fprint(w, `{"status":"Success"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	if _, err := client.ShareDomain(context.Background(), "example.com", "ops@example.com"); err != nil {
		t.Fatalf("ShareDomain() error = %v", err)
	}
}

func TestShareDomainTransportFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.ShareDomain(context.Background(), "example.com", "ops@example.com")
	if !IsFatal(err) {
		t.Errorf("ShareDomain() error = %v, want fatal request error", err)
	}
}

func TestVerifySharing(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		email      string
		wantShared bool
		wantEmails int
	}{
		{
			name:       "email in string list",
			body:       `["ops@example.com","dev@example.com"]`,
			email:      "ops@example.com",
			wantShared: true,
			wantEmails: 2,
		},
		{
			name:       "match ignores case and whitespace",
			body:       `["Ops@Example.COM"]`,
			email:      "  ops@example.com  ",
			wantShared: true,
			wantEmails: 1,
		},
		{
			name:       "email not in list",
			body:       `["dev@example.com"]`,
			email:      "ops@example.com",
			wantShared: false,
			wantEmails: 1,
		},
		{
			name:       "mail field objects",
			body:       `[{"mail":"ops@example.com"}]`,
			email:      "ops@example.com",
			wantShared: true,
			wantEmails: 1,
		},
		{
			name:       "email field objects",
			body:       `[{"email":"ops@example.com"}]`,
			email:      "ops@example.com",
			wantShared: true,
			wantEmails: 1,
		},
		{
			name:       "entries without an address are skipped",
			body:       `[42,{"id":"7"},"ops@example.com"]`,
			email:      "ops@example.com",
			wantShared: true,
			wantEmails: 1,
		},
		{
			name:       "no target email means any share counts",
			body:       `["dev@example.com"]`,
			email:      "",
			wantShared: true,
			wantEmails: 1,
		},
		{
			name:       "no target email and no shares",
			body:       `[]`,
			email:      "",
			wantShared: false,
			wantEmails: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/dns/list-shared-accounts.json" {
					t.Errorf("path = %q, want %q", r.URL.Path, "/dns/list-shared-accounts.json")
				}
				if got := r.PostFormValue("domain-name"); got != "example.com" {
					t.Errorf("domain-name = %q, want %q", got, "example.com")
				}
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL)

			result, err := client.VerifySharing(context.Background(), "example.com", tt.email)
			if err != nil {
				t.Fatalf("VerifySharing() error = %v", err)
			}
			if result.Shared != tt.wantShared {
				t.Errorf("Shared = %v, want %v", result.Shared, tt.wantShared)
			}
			if len(result.Emails) != tt.wantEmails {
				t.Errorf("Emails = %v, want %d entries", result.Emails, tt.wantEmails)
			}
		})
	}
}

func TestVerifySharingReportsExistingShares(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["dev@example.com","ops@example.com"]`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	result, err := client.VerifySharing(context.Background(), "example.com", "missing@example.com")
	if err != nil {
		t.Fatalf("VerifySharing() error = %v", err)
	}
	if result.Shared {
		t.Error("Shared = true, want false")
	}
	if want := "shared with: dev@example.com, ops@example.com"; result.Detail != want {
		t.Errorf("Detail = %q, want %q", result.Detail, want)
	}
}

func TestVerifySharingFailureStatusMeansNotShared(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"Failed","statusDescription":"Missing domain-name"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	result, err := client.VerifySharing(context.Background(), "example.com", "ops@example.com")
	if err != nil {
		t.Fatalf("VerifySharing() error = %v", err)
	}
	if result.Shared {
		t.Error("Shared = true, want false")
	}
	if result.Detail != "Missing domain-name" {
		t.Errorf("Detail = %q, want %q", result.Detail, "Missing domain-name")
	}
}

func TestVerifySharingUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `7`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	result, err := client.VerifySharing(context.Background(), "example.com", "")
	if err != nil {
		t.Fatalf("VerifySharing() error = %v", err)
	}
	if result.Shared {
		t.Error("Shared = true, want false")
	}
	if !strings.Contains(result.Detail, "unexpected") {
		t.Errorf("Detail = %q, want unexpected-shape note", result.Detail)
	}
}

func TestSummarize(t *testing.T) {
	results := []ShareResult{
		{Domain: "a.com", Outcome: OutcomeShared},
		{Domain: "b.com", Outcome: OutcomeAlreadyShared, Detail: "The domain is already shared with this account"},
		{Domain: "c.com", Outcome: OutcomeFailed, Detail: "Invalid domain name"},
		{Domain: "d.com", Outcome: OutcomeFailed, Detail: "Missing domain-name"},
	}

	summary := Summarize(results)

	if summary.Total != 4 {
		t.Errorf("Total = %d, want 4", summary.Total)
	}
	if summary.Shared != 1 {
		t.Errorf("Shared = %d, want 1", summary.Shared)
	}
	if summary.AlreadyShared != 1 {
		t.Errorf("AlreadyShared = %d, want 1", summary.AlreadyShared)
	}
	if summary.Failed != 2 {
		t.Errorf("Failed = %d, want 2", summary.Failed)
	}
	if summary.Succeeded() != 2 {
		t.Errorf("Succeeded() = %d, want 2", summary.Succeeded())
	}
	if len(summary.FailedResults) != 2 || summary.FailedResults[0].Domain != "c.com" {
		t.Errorf("FailedResults = %v, want c.com and d.com", summary.FailedResults)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Total != 0 || summary.Succeeded() != 0 || summary.Failed != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", summary)
	}
}
