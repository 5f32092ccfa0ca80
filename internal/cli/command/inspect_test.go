package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

func TestParseToken(t *testing.T) {
	tf, err := parseToken("ip=10.0.0.1~st=1000~exp=2000~acl=%2Fv%2F%2a~id=s1~data=x~hmac=abcd", '~')
	if err != nil {
		t.Fatalf("parseToken() error = %v", err)
	}

	want := tokenFields{
		IP:         "10.0.0.1",
		StartTime:  1000,
		Expiration: 2000,
		ACL:        "/v/*",
		SessionID:  "s1",
		Payload:    "x",
		HMAC:       "abcd",
	}
	if *tf != want {
		t.Errorf("parseToken() = %+v, want %+v", *tf, want)
	}
}

func TestParseToken_CustomDelimiter(t *testing.T) {
	tf, err := parseToken("exp=2000!acl=/*!hmac=ab", '!')
	if err != nil {
		t.Fatalf("parseToken() error = %v", err)
	}
	if tf.ACL != "/*" || tf.Expiration != 2000 {
		t.Errorf("parseToken() = %+v", tf)
	}
}

func TestParseToken_Errors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"bad escape", "exp=1~acl=%zz~hmac=ab"},
		{"no equals", "exp=1~acl~hmac=ab"},
		{"unknown field", "exp=1~acl=/*~foo=1~hmac=ab"},
		{"duplicate field", "exp=1~exp=2~acl=/*~hmac=ab"},
		{"bad exp", "exp=soon~acl=/*~hmac=ab"},
		{"bad st", "st=x~exp=1~acl=/*~hmac=ab"},
		{"missing hmac", "exp=1~acl=/*"},
		{"missing exp", "acl=/*~hmac=ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseToken(tt.token, '~'); err == nil {
				t.Errorf("parseToken(%q) should fail", tt.token)
			}
		})
	}
}

func TestInspect_RoundTrip(t *testing.T) {
	cfg := edgeauth.NewConfig()
	if err := cfg.SetKey(testKey); err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetEndTime(2000); err != nil {
		t.Fatal(err)
	}
	cfg.ACL = "/path with space/*"
	cfg.SessionID = "abc"
	token, err := edgeauth.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, edgeauth.FixedClock(1000), "-o", "json", "inspect", token)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var tf tokenFields
	if err := json.Unmarshal([]byte(stdout), &tf); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if tf.ACL != cfg.ACL || tf.SessionID != "abc" || tf.Expiration != 2000 {
		t.Errorf("inspect = %+v", tf)
	}
	if tf.Expired {
		t.Error("token should not be expired at t=1000")
	}
}

func TestInspect_Expired(t *testing.T) {
	stdout, _, err := runCLI(t, edgeauth.FixedClock(5000), "inspect", "exp=2000~acl=/*~hmac=ab")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(stdout, "expired") || !strings.Contains(stdout, "true") {
		t.Errorf("stdout = %q, want expired true", stdout)
	}
}

func TestInspect_Args(t *testing.T) {
	if _, _, err := runCLI(t, edgeauth.SystemClock, "inspect"); err == nil {
		t.Error("Run() should fail without a token")
	}
	if _, _, err := runCLI(t, edgeauth.SystemClock, "inspect", "--delimiter", "ab", "exp=1~acl=/*~hmac=ab"); err == nil {
		t.Error("Run() should reject a multi-character delimiter")
	}
}
