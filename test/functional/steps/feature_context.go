package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"brokerage-crm/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	app              *driver.App
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	customerIDs      map[string]string
	contractIDs      map[string]string
	tableID          string
	conn             *websocket.Conn
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.When(`^I check the health of the server$`, fc.iCheckTheHealthOfTheServer)
	ctx.Then(`^the "([^"]*)" check should be "([^"]*)"$`, fc.theCheckShouldBe)

	// Customer steps
	ctx.When(`^I create a customer named "([^"]*)" with phone "([^"]*)"$`, fc.iCreateACustomerNamedWithPhone)
	ctx.Given(`^a customer named "([^"]*)" exists$`, fc.aCustomerNamedExists)
	ctx.Given(`^a favorite customer named "([^"]*)" exists$`, fc.aFavoriteCustomerNamedExists)
	ctx.When(`^I get the customer "([^"]*)"$`, fc.iGetTheCustomer)
	ctx.When(`^I mark the customer "([^"]*)" as favorite$`, fc.iMarkTheCustomerAsFavorite)
	ctx.When(`^I delete the customer "([^"]*)"$`, fc.iDeleteTheCustomer)
	ctx.When(`^I list all customers$`, fc.iListAllCustomers)
	ctx.Then(`^the response should contain the customer "([^"]*)" with status "([^"]*)"$`, fc.theResponseShouldContainTheCustomerWithStatus)
	ctx.Then(`^the customer should be a favorite$`, fc.theCustomerShouldBeAFavorite)
	ctx.Then(`^the list should contain (\d+) customers?$`, fc.theListShouldContainCustomers)

	// Meeting and reconciliation steps
	ctx.Given(`^the customer "([^"]*)" had a meeting (\d+) days? ago$`, fc.theCustomerHadAMeetingDaysAgo)
	ctx.Given(`^the customer "([^"]*)" has a meeting in (\d+) days?$`, fc.theCustomerHasAMeetingInDays)
	ctx.Then(`^the customer "([^"]*)" should eventually have status "([^"]*)"$`, fc.theCustomerShouldEventuallyHaveStatus)
	ctx.Then(`^the customer "([^"]*)" should still have status "([^"]*)"$`, fc.theCustomerShouldStillHaveStatus)
	ctx.When(`^I request a reconciliation$`, fc.iRequestAReconciliation)
	ctx.Then(`^the reconciliation should report no updates$`, fc.theReconciliationShouldReportNoUpdates)

	// Contract steps
	ctx.Given(`^a contract for "([^"]*)" with balance date (\d+) days? ago$`, fc.aContractWithBalanceDateDaysAgo)
	ctx.Given(`^a contract for "([^"]*)" signed (\d+) days? ago with balance date in (\d+) days?$`, fc.aContractSignedDaysAgoWithBalanceInDays)
	ctx.Step(`^the contract for "([^"]*)" should eventually have status "([^"]*)"$`, fc.theContractShouldEventuallyHaveStatus)

	// View steps
	ctx.When(`^I view the "([^"]*)" view with filter "([^"]*)"$`, fc.iViewTheViewWithFilter)
	ctx.When(`^I view the "([^"]*)" view sorted by "([^"]*)" "([^"]*)"$`, fc.iViewTheViewSortedBy)
	ctx.Then(`^the view should list "([^"]*)"$`, fc.theViewShouldList)
	ctx.Then(`^the view should be empty$`, fc.theViewShouldBeEmpty)

	// Dynamic table steps
	ctx.Given(`^a table named "([^"]*)" with a category column$`, fc.aTableNamedWithACategoryColumn)
	ctx.Given(`^the table has a row "([^"]*)" in category "([^"]*)"$`, fc.theTableHasARowInCategory)
	ctx.Given(`^the table has a row "([^"]*)" without category$`, fc.theTableHasARowWithoutCategory)
	ctx.When(`^I view the rows of the table with filter "([^"]*)"$`, fc.iViewTheRowsOfTheTableWithFilter)
	ctx.Then(`^the rows should be "([^"]*)"$`, fc.theRowsShouldBe)

	// WebSocket steps
	ctx.When(`^I connect to the view stream$`, fc.iConnectToTheViewStream)
	ctx.When(`^I watch the "([^"]*)" view$`, fc.iWatchTheView)
	ctx.Then(`^I should receive the view state$`, fc.iShouldReceiveTheViewState)
	ctx.Then(`^I should receive the "([^"]*)" view with (\d+) records?$`, fc.iShouldReceiveTheViewWithRecords)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		app, err := driver.StartApp()
		if err != nil {
			return ctx, err
		}
		fc.app = app
		fc.apiDriver = driver.NewAPIDriver(app.URL)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.cleanupWebSocket()
		if fc.app != nil {
			fc.app.Stop()
			fc.app = nil
		}
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.customerIDs = make(map[string]string)
	fc.contractIDs = make(map[string]string)
	fc.tableID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) customerID(name string) string {
	id, ok := fc.customerIDs[name]
	fc.require.True(ok, "unknown customer %q", name)
	return id
}
