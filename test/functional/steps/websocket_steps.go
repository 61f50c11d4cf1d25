package steps

import (
	"time"
)

type viewFrame struct {
	Type    string           `json:"type"`
	View    string           `json:"view"`
	Records []map[string]any `json:"records"`
	Error   string           `json:"error"`
}

func (fc *FeatureContext) iConnectToTheViewStream() error {
	conn, err := fc.apiDriver.DialViews()
	if err != nil {
		return err
	}
	fc.conn = conn
	return nil
}

func (fc *FeatureContext) iWatchTheView(view string) error {
	fc.require.NotNil(fc.conn, "not connected to the view stream")
	return fc.conn.WriteJSON(map[string]string{"type": "watch", "view": view})
}

func (fc *FeatureContext) readFrame() viewFrame {
	fc.require.NoError(fc.conn.SetReadDeadline(time.Now().Add(_eventuallyTimeout)))

	var frame viewFrame
	fc.require.NoError(fc.conn.ReadJSON(&frame))
	return frame
}

func (fc *FeatureContext) iShouldReceiveTheViewState() error {
	frame := fc.readFrame()
	fc.require.Equal("state", frame.Type)
	return nil
}

// iShouldReceiveTheViewWithRecords skips older pushes of the same view
// until one carries the expected number of records.
func (fc *FeatureContext) iShouldReceiveTheViewWithRecords(view string, count int) error {
	for {
		frame := fc.readFrame()
		fc.require.NotEqual("error", frame.Type, frame.Error)
		if frame.Type == "view" && frame.View == view && len(frame.Records) == count {
			return nil
		}
	}
}

func (fc *FeatureContext) cleanupWebSocket() {
	if fc.conn != nil {
		fc.conn.Close()
		fc.conn = nil
	}
}
