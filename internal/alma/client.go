// Package alma pulls Analytics reports from the Alma API and maps the
// raw report rows onto holdings records.
package alma

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ils-data/marc852-audit/internal/common"
)

// Config for the Analytics client.
type Config struct {
	BaseURL   string        // default common.DefaultAlmaBaseURL
	APIKey    string        // read-only Analytics key for one IZ
	PageLimit int           // rows per request, the API caps this at 1000
	PageDelay time.Duration // pause between pages
	Timeout   time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = common.DefaultAlmaBaseURL
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 1000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Report is a fetched Analytics report: the column headings in schema
// order and the row cells in that same order.
type Report struct {
	Columns []string
	Rows    [][]string
}

// FetchReport pulls every page of the report at path, following
// resumption tokens until the API reports completion. Column headings
// come from the first page; an unfinished response without a token ends
// the fetch with whatever was collected.
func (c *Client) FetchReport(ctx context.Context, path string) (*Report, error) {
	report := &Report{}
	token := ""
	for page := 1; ; page++ {
		pg, err := c.fetchPage(ctx, path, token)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if report.Columns == nil {
			report.Columns = pg.columns
		}
		report.Rows = append(report.Rows, pg.rows...)
		c.logger.Info("alma.fetch.page",
			"page", page,
			"rows", len(pg.rows),
			"total", len(report.Rows),
			"finished", pg.finished,
		)

		if pg.finished {
			break
		}
		if pg.token == "" {
			c.logger.Warn("alma.fetch.missing_token", "page", page)
			break
		}
		token = pg.token

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PageDelay):
		}
	}

	c.logger.Info("alma.fetch.ok", "rows", len(report.Rows), "columns", len(report.Columns))
	return report, nil
}

type reportPage struct {
	columns  []string
	rows     [][]string
	finished bool
	token    string
}

func (c *Client) fetchPage(ctx context.Context, path, token string) (*reportPage, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/almaws/v1/analytics/reports"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("apikey", c.cfg.APIKey)
	q.Set("limit", strconv.Itoa(c.cfg.PageLimit))
	q.Set("col_names", "true")
	if token != "" {
		q.Set("token", token)
	} else {
		q.Set("path", path)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alma http error: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("alma response body close error", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("alma status %d: %s", resp.StatusCode, buf.String())
	}

	return parsePage(resp.Body)
}

// parsePage walks the response token by token instead of binding to a
// fixed document shape: the namespace prefixes and schema nesting vary
// between Analytics report paths.
func parsePage(r io.Reader) (*reportPage, error) {
	pg := &reportPage{}
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse analytics response: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		// Column headings live in saw-sql:columnHeading attributes on
		// the schema elements, in column order.
		for _, attr := range start.Attr {
			if strings.Contains(attr.Name.Local, "columnHeading") {
				pg.columns = append(pg.columns, attr.Value)
			}
		}

		switch start.Name.Local {
		case "IsFinished":
			text, err := textOf(dec)
			if err != nil {
				return nil, err
			}
			pg.finished = strings.TrimSpace(text) == "true"
		case "ResumptionToken":
			text, err := textOf(dec)
			if err != nil {
				return nil, err
			}
			pg.token = strings.TrimSpace(text)
		case "Row":
			row, err := readRow(dec)
			if err != nil {
				return nil, err
			}
			if len(row) > 0 {
				pg.rows = append(pg.rows, row)
			}
		}
	}
	return pg, nil
}

// readRow consumes a Row element and returns each child element's text
// in document order. Empty cells come back as empty strings.
func readRow(dec *xml.Decoder) ([]string, error) {
	var row []string
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse analytics row: %w", err)
		}
		switch tok.(type) {
		case xml.StartElement:
			text, err := textOf(dec)
			if err != nil {
				return nil, err
			}
			row = append(row, text)
		case xml.EndElement:
			return row, nil
		}
	}
}

// textOf consumes the current element through its end tag, returning
// the character data directly inside it.
func textOf(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("parse analytics element: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return sb.String(), nil
			}
			depth--
		case xml.CharData:
			if depth == 0 {
				sb.Write(t)
			}
		}
	}
}
