package jsonfile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"restaurant/internal/adapters/out/jsonfile"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/suite"
)

const storeName = "orders.json"

// StoreTestSuite exercises the JSON file store against a temporary directory.
type StoreTestSuite struct {
	suite.Suite
	dir    string
	logs   *bytes.Buffer
	logger *log.Logger
	store  *jsonfile.Store
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	suite.logs = new(bytes.Buffer)
	suite.logger = log.New("test")
	suite.logger.SetOutput(suite.logs)
	suite.logger.SetLevel(log.DEBUG)
	suite.store = jsonfile.NewStore(suite.dir, suite.logger)
}

func (suite *StoreTestSuite) writeRaw(content string) {
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, storeName), []byte(content), 0o644))
}

func (suite *StoreTestSuite) readRaw() string {
	data, err := os.ReadFile(filepath.Join(suite.dir, storeName))
	suite.Require().NoError(err)
	return string(data)
}

func (suite *StoreTestSuite) newOrder(id, customer string, items ...order.LineItem) *order.Order {
	orderID, err := kernel.NewOrderID(id)
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(orderID, customer, items)
	suite.Require().NoError(err)
	return o
}

func (suite *StoreTestSuite) newItem(name string, price, quantity int) order.LineItem {
	item, err := order.NewLineItem(name, price, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *StoreTestSuite) TestLoad_MissingStoreIsEmpty() {
	orders := suite.store.Load(context.Background(), storeName)

	suite.NotNil(orders)
	suite.Empty(orders)
	suite.Empty(suite.logs.String())
}

func (suite *StoreTestSuite) TestLoad_CorruptStoreIsEmpty() {
	testCases := map[string]string{
		"malformed json":   `[{"order_id": "A1",`,
		"top level object": `{"order_id": "A1"}`,
		"wrong field type": `[{"order_id": "A1", "customer": "Alice", "items": [{"name": "Tea", "price": "30", "quantity": 2}]}]`,
		"fractional price": `[{"order_id": "A1", "customer": "Alice", "items": [{"name": "Tea", "price": 30.5, "quantity": 2}]}]`,
	}

	for name, content := range testCases {
		suite.Run(name, func() {
			suite.logs.Reset()
			suite.writeRaw(content)

			orders := suite.store.Load(context.Background(), storeName)

			suite.Empty(orders)
			suite.Contains(suite.logs.String(), "unreadable")
		})
	}
}

func (suite *StoreTestSuite) TestLoad_SkipsInvalidRecords() {
	testCases := map[string]string{
		"negative price":    `{"order_id": "X1", "customer": "Eve", "items": [{"name": "Tea", "price": -1, "quantity": 2}]}`,
		"zero quantity":     `{"order_id": "X1", "customer": "Eve", "items": [{"name": "Tea", "price": 30, "quantity": 0}]}`,
		"blank item name":   `{"order_id": "X1", "customer": "Eve", "items": [{"name": " ", "price": 30, "quantity": 1}]}`,
		"blank order id":    `{"order_id": " ", "customer": "Eve", "items": []}`,
		"subtotal overflow": `{"order_id": "X1", "customer": "Eve", "items": [{"name": "Tea", "price": 9223372036854775807, "quantity": 2}]}`,
	}

	for name, invalid := range testCases {
		suite.Run(name, func() {
			suite.logs.Reset()
			suite.writeRaw(`[
    {"order_id": "A1", "customer": "Alice", "items": [{"name": "Tea", "price": 30, "quantity": 2}]},
    ` + invalid + `,
    {"order_id": "B2", "customer": "Bob", "items": [{"name": "Cake", "price": 80, "quantity": 1}]}
]`)

			orders := suite.store.Load(context.Background(), storeName)

			suite.Require().Len(orders, 2)
			suite.Equal("A1", orders[0].ID().String())
			suite.Equal("B2", orders[1].ID().String())
			suite.Contains(suite.logs.String(), "skipping record 2")
		})
	}
}

func (suite *StoreTestSuite) TestLoad_InvalidRecordDoesNotWipeStoreOnSave() {
	ctx := context.Background()
	suite.writeRaw(`[
    {"order_id": "A1", "customer": "Alice", "items": [{"name": "Tea", "price": -1, "quantity": 2}]},
    {"order_id": "B2", "customer": "Bob", "items": [{"name": "Cake", "price": 80, "quantity": 1}]}
]`)

	orders := suite.store.Load(ctx, storeName)
	orders = append(orders, suite.newOrder("C3", "Carol", suite.newItem("Soup", 40, 1)))
	suite.Require().NoError(suite.store.Save(ctx, storeName, orders))

	reloaded := suite.store.Load(ctx, storeName)
	suite.Require().Len(reloaded, 2)
	suite.Equal("B2", reloaded[0].ID().String())
	suite.Equal("C3", reloaded[1].ID().String())
}

func (suite *StoreTestSuite) TestLoad_BlankOrNullStoreIsEmpty() {
	for _, content := range []string{"", "  \n", "null", "[]"} {
		suite.writeRaw(content)

		suite.Empty(suite.store.Load(context.Background(), storeName))
	}
}

func (suite *StoreTestSuite) TestLoad_NormalizesAndToleratesMissingItems() {
	suite.writeRaw(`[{"order_id": "a1", "customer": "Alice"}]`)

	orders := suite.store.Load(context.Background(), storeName)

	suite.Require().Len(orders, 1)
	suite.Equal("A1", orders[0].ID().String())
	suite.Empty(orders[0].Items())
	suite.Equal(0, orders[0].Total())
}

func (suite *StoreTestSuite) TestSaveLoad_RoundTrip() {
	ctx := context.Background()
	saved := []*order.Order{
		suite.newOrder("A1", "王小明",
			suite.newItem("珍珠奶茶", 55, 2),
			suite.newItem("Fish & Chips <large>", 180, 1),
		),
		suite.newOrder("B2", "Bob", suite.newItem("Tea", 30, 3)),
	}

	suite.Require().NoError(suite.store.Save(ctx, storeName, saved))
	loaded := suite.store.Load(ctx, storeName)

	suite.Require().Len(loaded, 2)
	for i := range saved {
		suite.Equal(saved[i].ID().String(), loaded[i].ID().String())
		suite.Equal(saved[i].Customer(), loaded[i].Customer())
		suite.Equal(saved[i].Items(), loaded[i].Items())
		suite.Equal(saved[i].Total(), loaded[i].Total())
	}
}

func (suite *StoreTestSuite) TestSave_HumanReadableEncoding() {
	o := suite.newOrder("A1", "王小明", suite.newItem("珍珠奶茶", 55, 2))

	suite.Require().NoError(suite.store.Save(context.Background(), storeName, []*order.Order{o}))

	expected := `[
    {
        "order_id": "A1",
        "customer": "王小明",
        "items": [
            {
                "name": "珍珠奶茶",
                "price": 55,
                "quantity": 2
            }
        ]
    }
]
`
	suite.Equal(expected, suite.readRaw())
}

func (suite *StoreTestSuite) TestSave_EmptySequence() {
	suite.Require().NoError(suite.store.Save(context.Background(), storeName, nil))

	suite.Equal("[]\n", suite.readRaw())
}

func (suite *StoreTestSuite) TestSave_ItemlessOrderWritesEmptyArray() {
	o := suite.newOrder("A1", "Alice")

	suite.Require().NoError(suite.store.Save(context.Background(), storeName, []*order.Order{o}))

	suite.Contains(suite.readRaw(), `"items": []`)
}

func (suite *StoreTestSuite) TestSave_OverwritesWithoutLeftovers() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Save(ctx, storeName, []*order.Order{suite.newOrder("A1", "Alice")}))
	suite.Require().NoError(suite.store.Save(ctx, storeName, []*order.Order{suite.newOrder("B2", "Bob")}))

	loaded := suite.store.Load(ctx, storeName)
	suite.Require().Len(loaded, 1)
	suite.Equal("B2", loaded[0].ID().String())

	entries, err := os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *StoreTestSuite) TestSave_UnwritableTarget() {
	store := jsonfile.NewStore(filepath.Join(suite.dir, "missing"), suite.logger)

	err := store.Save(context.Background(), storeName, []*order.Order{suite.newOrder("A1", "Alice")})

	suite.Require().Error(err)
	suite.Contains(err.Error(), storeName)
}

func (suite *StoreTestSuite) TestSave_RejectsUnconstructedOrder() {
	err := suite.store.Save(context.Background(), storeName, []*order.Order{{}})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.NoFileExists(filepath.Join(suite.dir, storeName))
}

func (suite *StoreTestSuite) TestSave_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.store.Save(ctx, storeName, nil)

	suite.Require().ErrorIs(err, context.Canceled)
	suite.NoFileExists(filepath.Join(suite.dir, storeName))
}
