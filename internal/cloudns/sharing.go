package cloudns

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ShareOutcome classifies one domain's share attempt.
type ShareOutcome int

const (
	OutcomeShared ShareOutcome = iota + 1
	OutcomeAlreadyShared
	OutcomeFailed
)

func (o ShareOutcome) String() string {
	switch o {
	case OutcomeShared:
		return "shared"
	case OutcomeAlreadyShared:
		return "already shared"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ShareResult is the tagged outcome of sharing a single domain.
type ShareResult struct {
	Domain  string
	Outcome ShareOutcome
	Detail  string
}

// VerifyResult reports a single domain's sharing state.
type VerifyResult struct {
	Domain string
	Shared bool
	Emails []string
	Detail string
}

// ShareSummary tallies a batch share run. A domain that was already
// shared counts as a success but is reported separately.
type ShareSummary struct {
	Total         int
	Shared        int
	AlreadyShared int
	Failed        int
	FailedResults []ShareResult
}

// Succeeded is the number of domains the collaborator can access after
// the run, whether the grant is new or existed before.
func (s ShareSummary) Succeeded() int {
	return s.Shared + s.AlreadyShared
}

// Summarize tallies share results for the end-of-run report.
func Summarize(results []ShareResult) ShareSummary {
	summary := ShareSummary{Total: len(results)}
	for _, result := range results {
		switch result.Outcome {
		case OutcomeShared:
			summary.Shared++
		case OutcomeAlreadyShared:
			summary.AlreadyShared++
		default:
			summary.Failed++
			summary.FailedResults = append(summary.FailedResults, result)
		}
	}
	return summary
}

// ShareDomain grants the email access to one domain and classifies the
// outcome. An API-level failure is recorded in the result instead of
// aborting the batch; only exhausted retries escape as an error.
func (c *Client) ShareDomain(ctx context.Context, domain, email string) (ShareResult, error) {
	params := url.Values{}
	params.Set("domain-name", domain)
	params.Set("mail", email)

	result := ShareResult{Domain: domain}

	resp, err := c.call(ctx, "dns/add-shared-account.json", params)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			result.Outcome = OutcomeFailed
			result.Detail = apiErr.Description
			c.logger.Debug("share failed", "domain", domain, "description", apiErr.Description)
			return result, nil
		}
		return result, err
	}

	if resp.Failed() && isAlreadyShared(resp.StatusDescription()) {
		result.Outcome = OutcomeAlreadyShared
		result.Detail = resp.StatusDescription()
		return result, nil
	}
	if resp.Succeeded() {
		result.Outcome = OutcomeShared
		return result, nil
	}

	// An unexpected answer for this endpoint, count it as a failure.
	result.Outcome = OutcomeFailed
	result.Detail = fmt.Sprintf("unexpected %s response", resp.Shape())
	if desc := resp.StatusDescription(); desc != "" {
		result.Detail = desc
	}
	return result, nil
}

// VerifySharing lists the accounts a domain is shared with and, when
// email is non-empty, checks it against the list. Emails are compared
// trimmed and case-insensitively. A failed status from the API means the
// domain is not shared with anyone.
func (c *Client) VerifySharing(ctx context.Context, domain, email string) (VerifyResult, error) {
	params := url.Values{}
	params.Set("domain-name", domain)

	result := VerifyResult{Domain: domain}

	resp, err := c.call(ctx, "dns/list-shared-accounts.json", params)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			result.Detail = apiErr.Description
			c.logger.Debug("verification reported failure", "domain", domain, "description", apiErr.Description)
			return result, nil
		}
		return result, err
	}

	entries, ok := resp.List()
	if !ok {
		c.logger.Warn("unexpected shared accounts response", "domain", domain, "shape", resp.Shape())
		result.Detail = fmt.Sprintf("unexpected %s response", resp.Shape())
		return result, nil
	}

	result.Emails = extractEmails(entries)
	target := strings.TrimSpace(email)
	if target == "" {
		result.Shared = len(result.Emails) > 0
		return result, nil
	}

	for _, candidate := range result.Emails {
		if strings.EqualFold(strings.TrimSpace(candidate), target) {
			result.Shared = true
			break
		}
	}
	if !result.Shared && len(result.Emails) > 0 {
		result.Detail = "shared with: " + strings.Join(result.Emails, ", ")
	}
	return result, nil
}

// extractEmails flattens shared-account entries. The API returns either
// bare email strings or objects carrying a mail or email field.
func extractEmails(entries []any) []string {
	emails := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			emails = append(emails, v)
		case map[string]any:
			if mail, ok := v["mail"].(string); ok {
				emails = append(emails, mail)
			} else if mail, ok := v["email"].(string); ok {
				emails = append(emails, mail)
			}
		}
	}
	return emails
}
