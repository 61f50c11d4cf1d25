package steps

import (
	"encoding/json"
	"net/http"
	"time"
)

const _eventuallyTimeout = 3 * time.Second

func (fc *FeatureContext) createCustomer(fields map[string]any) error {
	var err error
	fc.response, err = fc.apiDriver.CreateCustomer(fields)
	if err != nil {
		return err
	}
	if fc.response.StatusCode != http.StatusCreated {
		return nil
	}

	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
	fc.require.NotEmpty(data["id"])
	fc.customerIDs[fields["name"].(string)] = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iCreateACustomerNamedWithPhone(name, phone string) error {
	return fc.createCustomer(map[string]any{"name": name, "phone": phone})
}

func (fc *FeatureContext) aCustomerNamedExists(name string) error {
	if err := fc.createCustomer(map[string]any{"name": name, "phone": "010-0000-0000"}); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) aFavoriteCustomerNamedExists(name string) error {
	if err := fc.createCustomer(map[string]any{"name": name, "phone": "010-0000-0000", "is_favorite": true}); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) getCustomer(name string) (map[string]any, error) {
	response, err := fc.apiDriver.GetCustomer(fc.customerID(name))
	if err != nil {
		return nil, err
	}
	fc.require.Equal(http.StatusOK, response.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	return data, nil
}

func (fc *FeatureContext) iGetTheCustomer(name string) error {
	var err error
	fc.response, err = fc.apiDriver.GetCustomer(fc.customerID(name))
	if err != nil {
		return err
	}
	if fc.response.StatusCode == http.StatusOK {
		fc.responseData = nil
		fc.require.NoError(fc.decodeBody(fc.response.Body, &fc.responseData))
	}
	return nil
}

func (fc *FeatureContext) iMarkTheCustomerAsFavorite(name string) error {
	customer, err := fc.getCustomer(name)
	if err != nil {
		return err
	}

	customer["is_favorite"] = true
	fc.response, err = fc.apiDriver.UpdateCustomer(fc.customerID(name), customer)
	if err != nil {
		return err
	}
	if fc.response.StatusCode == http.StatusOK {
		fc.responseData = nil
		fc.require.NoError(fc.decodeBody(fc.response.Body, &fc.responseData))
	}
	return nil
}

func (fc *FeatureContext) iDeleteTheCustomer(name string) error {
	var err error
	fc.response, err = fc.apiDriver.DeleteCustomer(fc.customerID(name))
	return err
}

func (fc *FeatureContext) iListAllCustomers() error {
	var err error
	fc.response, err = fc.apiDriver.ListCustomers()
	if err != nil {
		return err
	}

	var page PaginatedResponse[map[string]any]
	fc.require.NoError(fc.decodeBody(fc.response.Body, &page))
	fc.responseListData = page.Data
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheCustomerWithStatus(name, status string) error {
	fc.require.Equal(name, fc.responseData["name"])
	fc.require.Equal(status, fc.responseData["status"])
	return nil
}

func (fc *FeatureContext) theCustomerShouldBeAFavorite() error {
	fc.require.Equal(true, fc.responseData["is_favorite"])
	return nil
}

func (fc *FeatureContext) theListShouldContainCustomers(count int) error {
	fc.require.Len(fc.responseListData, count)
	return nil
}

func (fc *FeatureContext) theCustomerHadAMeetingDaysAgo(name string, days int) error {
	response, err := fc.apiDriver.CreateMeeting(fc.customerID(name), daysFromToday(-days))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	fc.require.Equal(http.StatusCreated, response.StatusCode)
	return nil
}

func (fc *FeatureContext) theCustomerHasAMeetingInDays(name string, days int) error {
	response, err := fc.apiDriver.CreateMeeting(fc.customerID(name), daysFromToday(days))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	fc.require.Equal(http.StatusCreated, response.StatusCode)
	return nil
}

func (fc *FeatureContext) theCustomerShouldEventuallyHaveStatus(name, status string) error {
	id := fc.customerID(name)
	fc.require.Eventually(func() bool {
		customer, ok := fetchJSON(fc.apiDriver.GetCustomer(id))
		return ok && customer["status"] == status
	}, _eventuallyTimeout, 50*time.Millisecond)
	return nil
}

// fetchJSON decodes a successful response without asserting, for polling.
func fetchJSON(response *http.Response, err error) (map[string]any, bool) {
	if err != nil {
		return nil, false
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, false
	}

	var data map[string]any
	if err := json.NewDecoder(response.Body).Decode(&data); err != nil {
		return nil, false
	}
	return data, true
}

func (fc *FeatureContext) theCustomerShouldStillHaveStatus(name, status string) error {
	customer, err := fc.getCustomer(name)
	if err != nil {
		return err
	}
	fc.require.Equal(status, customer["status"])
	return nil
}
