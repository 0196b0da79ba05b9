// Package tracking builds analytics event payloads and pushes them to an
// injected sink, mirroring the storefront's tag-manager data layer. A
// subset of event kinds is deduplicated per guest session through a
// two-tier check: an in-memory map for same-process speed and a
// session-persisted mirror that survives tracker recreation.
package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/example/amader/internal/commerce"
)

// Currency used in all commerce event payloads.
const Currency = "BDT"

// ItemBrand stamped on every normalized item.
const ItemBrand = "Amader Product"

// Sink receives finished event payloads. The storefront wires a queue
// consumed by the tag-manager bridge; tests inject their own.
type Sink interface {
	Push(event map[string]any)
}

// QueueSink collects events in order, oldest first.
type QueueSink struct {
	mu     sync.Mutex
	events []map[string]any
}

// NewQueueSink constructs an empty QueueSink.
func NewQueueSink() *QueueSink {
	return &QueueSink{}
}

func (q *QueueSink) Push(event map[string]any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, event)
}

// Events returns a snapshot of everything pushed so far.
func (q *QueueSink) Events() []map[string]any {
	q.mu.Lock()
	defer q.mu.Unlock()
	snapshot := make([]map[string]any, len(q.events))
	copy(snapshot, q.events)
	return snapshot
}

// Drain returns all queued events and empties the queue.
func (q *QueueSink) Drain() []map[string]any {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.events
	q.events = nil
	return drained
}

// ItemInput is the raw product reference a tracked action starts from.
type ItemInput struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price"`
	Quantity  int      `json:"quantity"`
	Category  string   `json:"category"`
	Variant   string   `json:"variant"`
}

// Item is the normalized shape embedded in event payloads.
type Item struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	ItemBrand    string  `json:"item_brand"`
	ItemCategory string  `json:"item_category,omitempty"`
	ItemVariant  string  `json:"item_variant,omitempty"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// NormalizeItem applies the item defaulting rules: slug, then id, then name
// as the identifier; sale price over price; quantity at least one.
func NormalizeItem(input ItemInput) Item {
	id := input.Slug
	if id == "" {
		id = input.ID
	}
	if id == "" {
		id = input.Name
	}

	price := input.Price
	if input.SalePrice != nil {
		price = *input.SalePrice
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return Item{
		ItemID:       id,
		ItemName:     input.Name,
		ItemBrand:    ItemBrand,
		ItemCategory: input.Category,
		ItemVariant:  input.Variant,
		Price:        price,
		Quantity:     quantity,
	}
}

func totalValue(inputs []ItemInput) float64 {
	var sum float64
	for _, input := range inputs {
		item := NormalizeItem(input)
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Tracker emits events for one guest session. The fired map is the fast
// in-memory dedupe tier; the storage mirror under sessionKey lets dedupe
// survive a tracker being rebuilt mid-session.
type Tracker struct {
	sink       Sink
	storage    commerce.Storage
	sessionKey string

	mu    sync.Mutex
	fired map[string]bool
}

// NewTracker builds a tracker writing dedupe state under sessionKey.
func NewTracker(sink Sink, storage commerce.Storage, sessionKey string) *Tracker {
	return &Tracker{
		sink:       sink,
		storage:    storage,
		sessionKey: sessionKey,
		fired:      make(map[string]bool),
	}
}

// Track pushes a named event unless its dedupe key already fired this
// session. An empty dedupe key always fires.
func (t *Tracker) Track(name string, payload map[string]any, dedupeKey string) {
	if t.isDuplicate(dedupeKey) {
		return
	}

	event := map[string]any{
		"event":        name,
		"event_id":     eventID(),
		"event_source": "web",
	}
	for key, value := range payload {
		event[key] = value
	}
	t.sink.Push(event)
}

func (t *Tracker) isDuplicate(key string) bool {
	if key == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fired[key] {
		return true
	}

	stored := t.readStored()
	if stored[key] {
		t.fired[key] = true
		return true
	}

	// First occurrence: mark both tiers together.
	t.fired[key] = true
	stored[key] = true
	t.writeStored(stored)
	return false
}

func (t *Tracker) readStored() map[string]bool {
	raw, err := t.storage.Load(t.sessionKey)
	if err != nil || len(raw) == 0 {
		return map[string]bool{}
	}

	var stored map[string]bool
	if err := json.Unmarshal(raw, &stored); err != nil {
		return map[string]bool{}
	}
	return stored
}

func (t *Tracker) writeStored(stored map[string]bool) {
	raw, err := json.Marshal(stored)
	if err != nil {
		return
	}
	_ = t.storage.Save(t.sessionKey, raw)
}

func eventID() string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}

// TrackSearch fires on every call.
func (t *Tracker) TrackSearch(query string, resultCount int) {
	t.Track("search", map[string]any{
		"search_term":  query,
		"result_count": resultCount,
	}, "")
}

// TrackSelectItem fires on every call.
func (t *Tracker) TrackSelectItem(input ItemInput, listName string) {
	if listName == "" {
		listName = "products"
	}
	t.Track("select_item", map[string]any{
		"item_list_name": listName,
		"ecommerce":      map[string]any{"items": []Item{NormalizeItem(input)}},
	}, "")
}

// TrackViewItem fires at most once per product per session.
func (t *Tracker) TrackViewItem(input ItemInput) {
	item := NormalizeItem(input)
	t.Track("view_item", map[string]any{
		"currency":  Currency,
		"value":     item.Price * float64(item.Quantity),
		"ecommerce": map[string]any{"items": []Item{item}},
	}, "view_item:"+item.ItemID)
}

// TrackAddToCart fires on every call.
func (t *Tracker) TrackAddToCart(input ItemInput, quantity int) {
	input.Quantity = quantity
	item := NormalizeItem(input)
	t.Track("add_to_cart", map[string]any{
		"currency":  Currency,
		"value":     item.Price * float64(item.Quantity),
		"ecommerce": map[string]any{"items": []Item{item}},
	}, "")
}

// TrackBeginCheckout fires at most once per distinct cart contents per
// session, keyed by an id:qty hash of the items.
func (t *Tracker) TrackBeginCheckout(inputs []ItemInput, shippingCost float64) {
	items := make([]Item, 0, len(inputs))
	hashParts := make([]string, 0, len(inputs))
	for _, input := range inputs {
		item := NormalizeItem(input)
		items = append(items, item)
		hashParts = append(hashParts, fmt.Sprintf("%s:%d", item.ItemID, item.Quantity))
	}

	t.Track("begin_checkout", map[string]any{
		"currency":  Currency,
		"value":     totalValue(inputs) + shippingCost,
		"ecommerce": map[string]any{"items": items},
	}, "begin_checkout:"+strings.Join(hashParts, "|"))
}

// TrackAddShippingInfo fires on every call.
func (t *Tracker) TrackAddShippingInfo(inputs []ItemInput, shippingTier string) {
	items := make([]Item, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, NormalizeItem(input))
	}
	t.Track("add_shipping_info", map[string]any{
		"currency":      Currency,
		"shipping_tier": shippingTier,
		"ecommerce":     map[string]any{"items": items},
	}, "")
}

// TrackAddPaymentInfo fires on every call.
func (t *Tracker) TrackAddPaymentInfo(inputs []ItemInput, paymentType string) {
	items := make([]Item, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, NormalizeItem(input))
	}
	t.Track("add_payment_info", map[string]any{
		"currency":     Currency,
		"payment_type": paymentType,
		"ecommerce":    map[string]any{"items": items},
	}, "")
}

// TrackPurchase fires at most once per order per session.
func (t *Tracker) TrackPurchase(orderID string, inputs []ItemInput, shippingCost float64) {
	items := make([]Item, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, NormalizeItem(input))
	}
	value := totalValue(inputs) + shippingCost

	t.Track("purchase", map[string]any{
		"transaction_id": orderID,
		"currency":       Currency,
		"value":          value,
		"shipping":       shippingCost,
		"ecommerce": map[string]any{
			"transaction_id": orderID,
			"currency":       Currency,
			"value":          value,
			"shipping":       shippingCost,
			"items":          items,
		},
	}, "purchase:"+orderID)
}
