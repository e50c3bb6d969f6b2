package statsd

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestNormalizeMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" cart/summary ":    "cart_summary",
		"foo..bar":          "foo.bar",
		"multi  space":      "multi__space",
		"shop/products/id":  "shop_products_id",
		"..storefront.ui..": "storefront.ui",
		"guard|decision:1":  "guard_decision_1",
		".":                 "",
	}

	for input, want := range tests {
		if got := normalizeMetricName(input); got != want {
			t.Fatalf("normalizeMetricName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatTags(t *testing.T) {
	t.Parallel()

	global := map[string]string{
		"env":       "prod",
		" service ": " storefront ",
	}
	local := map[string]string{
		"result":   " success ",
		"":         "ignored",
		"env":      "stage",
		"op":       "products.get",
		"bad:key":  "a|b,c#d",
		"hit":      "true",
		"   ":      "blank",
		"category": "",
	}

	got := formatTags(global, local)
	want := "|#bad_key:a_b_c_d,category:,env:stage,hit:true,op:products.get,result:success,service:storefront"

	if got != want {
		t.Fatalf("formatTags mismatch\n got: %q\nwant: %q", got, want)
	}
	if got := formatTags(nil, nil); got != "" {
		t.Fatalf("formatTags(nil, nil) = %q, want empty string", got)
	}
}

func TestCloneTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	original := map[string]string{"env": "prod", "": "ignored"}
	cloned := cloneTags(original)
	cloned["env"] = "stage"
	if original["env"] != "prod" {
		t.Fatal("cloneTags did not copy values")
	}
	if _, ok := cloned[""]; ok {
		t.Fatal("cloneTags kept empty key")
	}
}

func TestClientCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	clientConn, peerConn := net.Pipe()
	defer peerConn.Close()

	client := &Client{conn: clientConn}
	if err := client.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close (second call) error: %v", err)
	}
	// Writes after Close are dropped, not panics.
	client.Count("guard.decision", 1, nil)

	var nilClient *Client
	nilClient.Gauge("cart.summary_streams_open", 1, nil)
	if err := nilClient.Close(); err != nil {
		t.Fatalf("nil client Close error: %v", err)
	}
}

func TestNewClientRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{Address: "   "}); err == nil {
		t.Fatal("expected an error for an empty address")
	}
	_, err := NewClient(Config{Address: "bad address"})
	if err == nil || !strings.Contains(err.Error(), "statsd dial") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientWritesLineProtocol(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp listen unavailable: %v", err)
	}
	defer pc.Close()

	client, err := NewClient(Config{
		Address: pc.LocalAddr().String(),
		Prefix:  "storefront.",
		Service: "storefront-ui",
		Env:     "test",
	})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	read := func() string {
		t.Helper()
		if err := pc.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
			t.Fatalf("set deadline: %v", err)
		}
		buf := make([]byte, 512)
		n, _, err := pc.ReadFrom(buf)
		if err != nil {
			t.Fatalf("read metric: %v", err)
		}
		return string(buf[:n])
	}

	client.Count("guard.decision", 1, map[string]string{"region": "admin"})
	if got, want := read(), "storefront.guard.decision:1|c|#env:test,region:admin,service:storefront-ui"; got != want {
		t.Fatalf("count line = %q, want %q", got, want)
	}

	client.Gauge("cart.summary_streams_open", 3, nil)
	if got, want := read(), "storefront.cart.summary_streams_open:3|g|#env:test,service:storefront-ui"; got != want {
		t.Fatalf("gauge line = %q, want %q", got, want)
	}

	client.Timing("storeapi.duration", 1500*time.Microsecond, map[string]string{"op": "cart.get"})
	if got, want := read(), "storefront.storeapi.duration:1.5|ms|#env:test,op:cart.get,service:storefront-ui"; got != want {
		t.Fatalf("timing line = %q, want %q", got, want)
	}
}

func TestRecorderNamed(t *testing.T) {
	t.Parallel()

	rec := &Recorder{}
	rec.Count("a", 2, map[string]string{"k": "v"})
	rec.Timing("b", 1500*time.Microsecond, nil)
	rec.Count("a", 1, nil)

	got := rec.Named("a")
	if len(got) != 2 || got[0].Value != 2 || got[0].Tags["k"] != "v" {
		t.Fatalf("unexpected recorded metrics: %+v", got)
	}
	if b := rec.Named("b"); len(b) != 1 || b[0].Value != 1.5 || b[0].Kind != "timing" {
		t.Fatalf("unexpected timing: %+v", b)
	}
}
