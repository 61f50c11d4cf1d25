package steps

import (
	"strings"
	"time"

	"brokerage-crm/test/functional/driver"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	d, err := time.ParseDuration(strings.TrimSpace(duration))
	if err != nil {
		return err
	}

	time.Sleep(d)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) iCheckTheHealthOfTheServer() error {
	var err error
	fc.response, err = fc.apiDriver.Healthz()
	return err
}

func (fc *FeatureContext) theCheckShouldBe(name, status string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))

	checks, ok := data["checks"].(map[string]any)
	fc.require.True(ok, "health response has no checks")
	fc.require.Equal(status, checks[name])
	return nil
}

// daysFromToday formats the local day offset by days, negative for the past.
func daysFromToday(days int) string {
	location, err := time.LoadLocation(driver.Timezone)
	if err != nil {
		location = time.UTC
	}
	return time.Now().In(location).AddDate(0, 0, days).Format(time.DateOnly)
}
