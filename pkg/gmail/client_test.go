package gmail

import (
	"strings"
	"testing"
)

func TestBuildRFC822(t *testing.T) {
	raw := string(buildRFC822("hr@techcorp.example", "bob@techcorp.example", "Official Communication", "<p>hi</p>"))

	for _, want := range []string{
		"From: hr@techcorp.example\r\n",
		"To: bob@techcorp.example\r\n",
		"Subject: Official Communication\r\n",
		"Content-Type: text/html",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q:\n%s", want, raw)
		}
	}

	if !strings.HasSuffix(raw, "\r\n\r\n<p>hi</p>") {
		t.Errorf("body not separated from headers by blank line:\n%s", raw)
	}
}
