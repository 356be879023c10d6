package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	portsrepo "github.com/lakemi26/tech-challenge/internal/core/ports/repositories"
)

// TableController drives cursor-based paging over the owner's full
// transaction history. It keeps the page currently on screen, the cursor
// to the next page, and a stack of cursors for walking back.
//
// Not safe for concurrent use; one controller per view.
type TableController struct {
	BaseService
	reader   portsrepo.TransactionReader
	ownerID  string
	pageSize int

	records     []domain.Transaction
	pageIndex   int
	cursorStack []*string
	nextCursor  *string
	loading     bool
}

// NewTableController creates a paging controller for one owner's history.
func NewTableController(reader portsrepo.TransactionReader, ownerID string, pageSize int) *TableController {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &TableController{
		reader:   reader,
		ownerID:  ownerID,
		pageSize: pageSize,
	}
}

// fetch loads one page. State is only mutated after a successful fetch, so
// a failure leaves the page on screen untouched.
func (c *TableController) fetch(ctx context.Context, token *string) ([]domain.Transaction, *string, error) {
	c.loading = true
	defer func() { c.loading = false }()

	records, next, err := c.reader.ListAllTransactionsPaged(ctx, c.ownerID, c.pageSize, token)
	if err != nil {
		c.LogError(ctx, err, "Failed to fetch transactions page",
			slog.String("owner_id", c.ownerID),
			slog.Int("page_index", c.pageIndex))
		return nil, nil, fmt.Errorf("failed to fetch transactions page: %w", err)
	}
	return records, next, nil
}

// Load fetches the first page and resets back-navigation.
func (c *TableController) Load(ctx context.Context) error {
	records, next, err := c.fetch(ctx, nil)
	if err != nil {
		return err
	}
	c.records = records
	c.nextCursor = next
	c.pageIndex = 0
	c.cursorStack = nil
	return nil
}

// GoNext advances one page. No-op on the last page.
func (c *TableController) GoNext(ctx context.Context) error {
	if c.nextCursor == nil {
		return nil
	}
	token := c.nextCursor
	records, next, err := c.fetch(ctx, token)
	if err != nil {
		return err
	}
	c.cursorStack = append(c.cursorStack, token)
	c.records = records
	c.nextCursor = next
	c.pageIndex++
	return nil
}

// GoPrevious steps one page back. No-op on the first page.
func (c *TableController) GoPrevious(ctx context.Context) error {
	if c.pageIndex == 0 {
		return nil
	}
	var token *string
	if c.pageIndex > 1 {
		token = c.cursorStack[c.pageIndex-2]
	}
	records, next, err := c.fetch(ctx, token)
	if err != nil {
		return err
	}
	c.cursorStack = c.cursorStack[:c.pageIndex-1]
	c.records = records
	c.nextCursor = next
	c.pageIndex--
	return nil
}

// HasNext reports whether a further page exists.
func (c *TableController) HasNext() bool { return c.nextCursor != nil }

// HasPrevious reports whether an earlier page exists.
func (c *TableController) HasPrevious() bool { return c.pageIndex > 0 }

// PageIndex returns the zero-based index of the page on screen.
func (c *TableController) PageIndex() int { return c.pageIndex }

// Loading reports whether a fetch is in flight.
func (c *TableController) Loading() bool { return c.loading }

// Records returns the page currently on screen.
func (c *TableController) Records() []domain.Transaction { return c.records }

// Visible applies the filter to the page on screen, preserving order.
// Only fetched records are considered, so a filtered page can show fewer
// rows than matching records exist on other pages.
func (c *TableController) Visible(filter domain.TransactionFilter) []domain.Transaction {
	return filter.Apply(c.records)
}

// ApplySaved splices a saved record into the page: a record already on
// screen is replaced in place, a new one is prepended. The page never
// grows past its size.
func (c *TableController) ApplySaved(txn domain.Transaction) {
	for i := range c.records {
		if c.records[i].ID == txn.ID {
			c.records[i] = txn
			return
		}
	}
	c.records = append([]domain.Transaction{txn}, c.records...)
	if len(c.records) > c.pageSize {
		c.records = c.records[:c.pageSize]
	}
}

// ApplyDeleted drops a deleted record from the page if present.
func (c *TableController) ApplyDeleted(txnID string) {
	for i := range c.records {
		if c.records[i].ID == txnID {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return
		}
	}
}
