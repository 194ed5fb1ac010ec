package core

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/klauspost/compress/zip"
)

// zipEntry is one member written by writeZip, in order.
type zipEntry struct {
	name    string
	content string
}

// writeZip creates dir/name containing entries and returns its path.
func writeZip(t *testing.T, dir, name string, entries ...zipEntry) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("create entry %s: %v", e.name, err)
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			t.Fatalf("write entry %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip %s: %v", name, err)
	}
	return path
}

// mustParse parses CSV text into a frame or fails the test.
func mustParse(t *testing.T, text string) dataframe.DataFrame {
	t.Helper()

	df := ParseCSV(strings.NewReader(text))
	if df.Err != nil {
		t.Fatalf("ParseCSV() error = %v", df.Err)
	}
	return df
}

// campaignCSV renders n data rows in the full campaign layout. Row i gets
// client_id base+i.
func campaignCSV(base, n int) string {
	var b strings.Builder
	b.WriteString("client_id,age,job,marital,education,credit_default,mortgage,number_contacts,contact_duration,previous_campaign_contacts,previous_outcome,campaign_outcome,day,month,cons_price_idx,euribor_three_months\n")
	for i := 0; i < n; i++ {
		b.WriteString(strconv.Itoa(base + i))
		b.WriteString(",56,blue-collar.,married,basic.4y,no,yes,1,261,0,nonexistent,no,15,may,93.994,4.857\n")
	}
	return b.String()
}
