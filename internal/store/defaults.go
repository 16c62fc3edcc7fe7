package store

import (
	"github.com/billie-coop/picoconf/internal/jsondoc"
)

// HomeKey is the synthetic welcome category. It is injected on every load
// and stripped on every save.
const HomeKey = "Home$"

// CategoryMarker ends category names that the sidebar highlights and
// separates from the rest.
const CategoryMarker = "$"

// WelcomeText is shown on the home page
const WelcomeText = "Thank for downloading my simple project. \nfeel free to mess around!"

// DefaultDocument is written by Reset. It is kept in rendered form so the
// file content after a reset is exactly this text.
const DefaultDocument = `{
  "Streaming$": {
    "Bitrate": 150,
    "Framerate": 90,
    "Codec": "h264",
    "Adaptive Bitrate": true
  },
  "Display": {
    "Resolution": "1832x1920",
    "Sharpening": 20,
    "Show Overlay": false
  },
  "Audio": {
    "Volume": 100,
    "Microphone": {
      "Enabled": false,
      "Gain": 50
    }
  },
  "Network": {
    "Host": "auto",
    "Port": 80,
    "Wired Only": false
  }
}`

func homeEntry() jsondoc.Value {
	home := jsondoc.NewDocument()
	home.Set("Welcome!", jsondoc.String(WelcomeText))
	return jsondoc.Object(home)
}
