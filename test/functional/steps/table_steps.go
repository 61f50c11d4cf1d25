package steps

import (
	"fmt"
	"net/http"
	"net/url"
)

func (fc *FeatureContext) aTableNamedWithACategoryColumn(name string) error {
	response, err := fc.apiDriver.CreateTable(name, []map[string]any{
		{"name": "title", "label": "매물명", "type": "text", "required": true, "display": true, "role": "plain"},
		{"name": "category", "label": "분류", "type": "text", "display": true, "role": "plain"},
	})
	if err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, response.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.tableID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) createRow(fields map[string]any) error {
	fc.require.NotEmpty(fc.tableID, "no table created")

	response, err := fc.apiDriver.CreateRow(fc.tableID, fields)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	fc.require.Equal(http.StatusCreated, response.StatusCode)
	return nil
}

func (fc *FeatureContext) theTableHasARowInCategory(title, category string) error {
	return fc.createRow(map[string]any{"title": title, "category": category})
}

func (fc *FeatureContext) theTableHasARowWithoutCategory(title string) error {
	return fc.createRow(map[string]any{"title": title})
}

func (fc *FeatureContext) iViewTheRowsOfTheTableWithFilter(filter string) error {
	var err error
	fc.response, err = fc.apiDriver.View(fmt.Sprintf("tables/%s/rows", fc.tableID), url.Values{"filter": []string{filter}})
	if err != nil {
		return err
	}
	if fc.response.StatusCode == http.StatusOK {
		fc.responseListData = nil
		fc.require.NoError(fc.decodeBody(fc.response.Body, &fc.responseListData))
	}
	return nil
}

func (fc *FeatureContext) theRowsShouldBe(titles string) error {
	listed := make([]string, 0, len(fc.responseListData))
	for _, row := range fc.responseListData {
		fields, ok := row["fields"].(map[string]any)
		fc.require.True(ok, "row without fields")
		listed = append(listed, fmt.Sprint(fields["title"]))
	}

	fc.require.ElementsMatch(splitNames(titles), listed)
	return nil
}
