package steps

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func (fc *FeatureContext) createContract(tenant string, fields map[string]any) error {
	fields["tenant_name"] = tenant
	fields["building_name"] = "한빛빌딩"

	response, err := fc.apiDriver.CreateContract(fields)
	if err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, response.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.contractIDs[tenant] = data["id"].(string)
	return nil
}

func (fc *FeatureContext) aContractWithBalanceDateDaysAgo(tenant string, days int) error {
	return fc.createContract(tenant, map[string]any{
		"contract_date": daysFromToday(-days - 30),
		"balance_date":  daysFromToday(-days),
	})
}

func (fc *FeatureContext) aContractSignedDaysAgoWithBalanceInDays(tenant string, signed, balance int) error {
	return fc.createContract(tenant, map[string]any{
		"contract_date": daysFromToday(-signed),
		"balance_date":  daysFromToday(balance),
	})
}

func (fc *FeatureContext) theContractShouldEventuallyHaveStatus(tenant, status string) error {
	id, ok := fc.contractIDs[tenant]
	fc.require.True(ok, "unknown contract %q", tenant)

	fc.require.Eventually(func() bool {
		contract, ok := fetchJSON(fc.apiDriver.GetContract(id))
		return ok && contract["progress_status"] == status
	}, _eventuallyTimeout, 50*time.Millisecond)
	return nil
}

func (fc *FeatureContext) iRequestAReconciliation() error {
	var err error
	fc.response, err = fc.apiDriver.Reconcile()
	if err != nil {
		return err
	}
	if fc.response.StatusCode == http.StatusOK {
		fc.responseData = nil
		fc.require.NoError(fc.decodeBody(fc.response.Body, &fc.responseData))
	}
	return nil
}

func (fc *FeatureContext) theReconciliationShouldReportNoUpdates() error {
	fc.require.Empty(fc.responseData["customer_updates"])
	fc.require.Empty(fc.responseData["contract_updates"])
	return nil
}

func (fc *FeatureContext) fetchView(name string, query url.Values) error {
	var err error
	fc.response, err = fc.apiDriver.View(name, query)
	if err != nil {
		return err
	}
	if fc.response.StatusCode != http.StatusOK {
		return nil
	}

	var page PaginatedResponse[map[string]any]
	fc.require.NoError(fc.decodeBody(fc.response.Body, &page))
	fc.responseListData = page.Data
	return nil
}

func (fc *FeatureContext) iViewTheViewWithFilter(name, filter string) error {
	return fc.fetchView(name, url.Values{"filter": []string{filter}})
}

func (fc *FeatureContext) iViewTheViewSortedBy(name, key, direction string) error {
	return fc.fetchView(name, url.Values{"sort": []string{key}, "dir": []string{direction}})
}

// theViewShouldList compares the listed names, in order, with a comma
// separated list.
func (fc *FeatureContext) theViewShouldList(names string) error {
	listed := make([]string, 0, len(fc.responseListData))
	for _, record := range fc.responseListData {
		name, ok := record["name"]
		if !ok {
			name = record["tenant_name"]
		}
		listed = append(listed, fmt.Sprint(name))
	}

	fc.require.Equal(splitNames(names), listed)
	return nil
}

func (fc *FeatureContext) theViewShouldBeEmpty() error {
	fc.require.Empty(fc.responseListData)
	return nil
}

func splitNames(names string) []string {
	parts := strings.Split(names, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
