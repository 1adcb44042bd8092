package cloudns

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// listRowsPerPage is the page size requested from the zone list endpoints.
const listRowsPerPage = 100

// PagesCount returns how many zone list pages the account spans at the
// given page size. Unrecognized response shapes fall back to a single
// page instead of failing the listing.
func (c *Client) PagesCount(ctx context.Context, rowsPerPage int) (int, error) {
	params := url.Values{}
	params.Set("rows-per-page", strconv.Itoa(rowsPerPage))

	resp, err := c.call(ctx, "dns/get-pages-count.json", params)
	if err != nil {
		return 0, err
	}

	if pages, ok := resp.Int(); ok {
		return pages, nil
	}
	c.logger.Warn("unexpected pages count response, assuming one page", "shape", resp.Shape())
	return 1, nil
}

// ListZonesPage fetches one page of zones and extracts the domain names.
// Newer API versions answer with a list of zone objects; very old ones
// answered with an object keyed by domain name, which is still accepted.
// A page with an unrecognized shape is skipped with a warning.
func (c *Client) ListZonesPage(ctx context.Context, page, rowsPerPage int) ([]string, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("rows-per-page", strconv.Itoa(rowsPerPage))

	resp, err := c.call(ctx, "dns/list-zones.json", params)
	if err != nil {
		return nil, err
	}

	switch resp.Shape() {
	case ShapeList:
		entries, _ := resp.List()
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			zone, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if name, ok := zone["name"].(string); ok {
				names = append(names, name)
			}
		}
		return names, nil
	case ShapeObject:
		zones, _ := resp.Object()
		names := make([]string, 0, len(zones))
		for name := range zones {
			names = append(names, name)
		}
		// Map iteration is unordered, keep legacy pages deterministic.
		sort.Strings(names)
		return names, nil
	default:
		c.logger.Warn("unexpected zone list response, skipping page", "page", page, "shape", resp.Shape())
		return nil, nil
	}
}

// ListDomains walks every zone page in order and flattens the domain
// names. The result preserves the order pages were served in; duplicates
// are kept as the API reported them.
func (c *Client) ListDomains(ctx context.Context, progress chan<- string) ([]string, error) {
	pages, err := c.PagesCount(ctx, listRowsPerPage)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("fetching zone pages", "pages", pages, "rowsPerPage", listRowsPerPage)

	var domains []string
	for page := 1; page <= pages; page++ {
		if progress != nil {
			progress <- fmt.Sprintf("Fetching page %d/%d", page, pages)
		}
		names, err := c.ListZonesPage(ctx, page, listRowsPerPage)
		if err != nil {
			return nil, err
		}
		domains = append(domains, names...)
	}
	return domains, nil
}
