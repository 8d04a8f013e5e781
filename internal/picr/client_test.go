package picr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/bridge"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

const envelope = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>%s</soap:Body></soap:Envelope>`

const p04637Reply = `<ns1:getUPIForAccessionResponse xmlns:ns1="http://www.ebi.ac.uk/picr/AccessionMappingService">
<ns1:getUPIForAccessionReturn>
  <ns1:CRC64>AD5C149FD8106131</ns1:CRC64>
  <ns1:UPI>UPI000002ED67</ns1:UPI>
  <ns1:identicalCrossReferences>
    <ns1:accession>P04637</ns1:accession>
    <ns1:accessionVersion>4</ns1:accessionVersion>
    <ns1:databaseName>SWISSPROT</ns1:databaseName>
    <ns1:deleted>false</ns1:deleted>
    <ns1:taxonId>9606</ns1:taxonId>
  </ns1:identicalCrossReferences>
  <ns1:identicalCrossReferences>
    <ns1:accession>P04637-1</ns1:accession>
    <ns1:databaseName>SWISSPROT_VARSPLIC</ns1:databaseName>
    <ns1:deleted>false</ns1:deleted>
    <ns1:taxonId>9606</ns1:taxonId>
  </ns1:identicalCrossReferences>
  <ns1:identicalCrossReferences>
    <ns1:accession>Q53GA5</ns1:accession>
    <ns1:databaseName>TREMBL</ns1:databaseName>
    <ns1:deleted>true</ns1:deleted>
    <ns1:taxonId>9606</ns1:taxonId>
  </ns1:identicalCrossReferences>
  <ns1:identicalCrossReferences>
    <ns1:accession>A0A087WT22</ns1:accession>
    <ns1:databaseName>TREMBL</ns1:databaseName>
    <ns1:deleted>false</ns1:deleted>
    <ns1:taxonId>9606</ns1:taxonId>
  </ns1:identicalCrossReferences>
  <ns1:sequence>MEEPQSDPSV
EPPLSQETF</ns1:sequence>
</ns1:getUPIForAccessionReturn>
</ns1:getUPIForAccessionResponse>`

func newTestClient(t *testing.T, h func(body string) (int, string)) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		status, payload := h(string(body))
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(status)
		_, _ = fmt.Fprintf(w, envelope, payload)
	}))
	t.Cleanup(server.Close)
	return New(httpclient.NewClient(Name, server.URL))
}

func TestMapAccession(t *testing.T) {
	c := newTestClient(t, func(body string) (int, string) {
		assert.Contains(t, body, `getUPIForAccession xmlns="http://www.ebi.ac.uk/picr/AccessionMappingService"`)
		assert.Contains(t, body, "<accession>NP_000537</accession>")
		assert.Contains(t, body, "<ac_version>3</ac_version>")
		assert.Contains(t, body, "<searchDatabases>SWISSPROT</searchDatabases><searchDatabases>TREMBL</searchDatabases>")
		assert.Contains(t, body, "<taxonId>9606</taxonId>")
		assert.Contains(t, body, "<onlyActive>true</onlyActive>")
		return http.StatusOK, p04637Reply
	})

	entries, err := c.MapAccession(context.Background(), "NP_000537.3", Options{
		Databases:  []string{SwissProt, TrEMBL},
		TaxID:      9606,
		OnlyActive: true,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "UPI000002ED67", e.UPI)
	assert.Equal(t, "AD5C149FD8106131", e.CRC64)
	assert.Equal(t, "MEEPQSDPSVEPPLSQETF", e.Sequence)
	require.Len(t, e.Identical, 4)
	assert.Equal(t, model.CrossReference{
		Accession:        "P04637",
		AccessionVersion: "4",
		Database:         SwissProt,
		TaxID:            9606,
		Active:           true,
		UPI:              "UPI000002ED67",
		CRC64:            "AD5C149FD8106131",
	}, e.Identical[0])
	assert.False(t, e.Identical[2].Active)

	assert.Equal(t, []string{"P04637", "P04637-1"}, SwissProtIDs(entries))
	assert.Equal(t, []string{"A0A087WT22"}, TremblIDs(entries))
	assert.Equal(t, []string{"UPI000002ED67"}, UPIs(append(entries, entries...)))
}

func TestMapAccessionUnknown(t *testing.T) {
	c := newTestClient(t, func(string) (int, string) {
		return http.StatusOK, `<ns1:getUPIForAccessionResponse xmlns:ns1="http://www.ebi.ac.uk/picr/AccessionMappingService"/>`
	})

	entries, err := c.MapAccession(context.Background(), "NOPE", Options{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = c.MapAccession(context.Background(), " ", Options{})
	assert.True(t, bridge.IsKind(err, bridge.KindInvalidInput))
}

func TestMapAccessionFault(t *testing.T) {
	c := newTestClient(t, func(string) (int, string) {
		return http.StatusInternalServerError, `<soap:Fault><faultcode>soap:Server</faultcode><faultstring>database list is invalid</faultstring></soap:Fault>`
	})

	_, err := c.MapAccession(context.Background(), "P04637", Options{Databases: []string{"NOT_A_DB"}})
	assert.True(t, bridge.IsKind(err, bridge.KindRemote))
}

func TestMapSequence(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, func(body string) (int, string) {
			assert.Contains(t, body, "<sequence>MEEPQSDPSVEPPLSQETF</sequence>")
			reply := strings.ReplaceAll(p04637Reply, "getUPIForAccession", "getUPIForSequence")
			return http.StatusOK, reply
		})
		e, err := c.MapSequence(context.Background(), "meepqsdpsv\n eppLSQETF", Options{})
		require.NoError(t, err)
		assert.Equal(t, "UPI000002ED67", e.UPI)
	})

	t.Run("no entry", func(t *testing.T) {
		c := newTestClient(t, func(string) (int, string) {
			return http.StatusOK, `<ns1:getUPIForSequenceResponse xmlns:ns1="http://www.ebi.ac.uk/picr/AccessionMappingService"/>`
		})
		_, err := c.MapSequence(context.Background(), "MKV", Options{})
		assert.True(t, bridge.IsNotFound(err))
	})
}

func TestMappedDatabases(t *testing.T) {
	c := newTestClient(t, func(body string) (int, string) {
		assert.Contains(t, body, "getMappedDatabaseNames")
		return http.StatusOK, `<ns1:getMappedDatabaseNamesResponse xmlns:ns1="http://www.ebi.ac.uk/picr/AccessionMappingService">
<ns1:mappedDatabases>SWISSPROT</ns1:mappedDatabases><ns1:mappedDatabases>TREMBL</ns1:mappedDatabases><ns1:mappedDatabases>ENSEMBL_HUMAN</ns1:mappedDatabases>
</ns1:getMappedDatabaseNamesResponse>`
	})

	names, err := c.MappedDatabases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"SWISSPROT", "TREMBL", "ENSEMBL_HUMAN"}, names)
}

func TestMapAccessions(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(body string) (int, string) {
		calls.Add(1)
		if strings.Contains(body, "<accession>UNKNOWN</accession>") {
			return http.StatusOK, `<ns1:getUPIForAccessionResponse xmlns:ns1="http://www.ebi.ac.uk/picr/AccessionMappingService"/>`
		}
		return http.StatusOK, p04637Reply
	})

	accs := []string{"P04637", "UNKNOWN", "P04637-1", "Q53GA5", "A0A087WT22", "NP_000537.3"}
	out, err := c.MapAccessions(context.Background(), accs, Options{})
	require.NoError(t, err)

	assert.Len(t, out, len(accs))
	assert.Empty(t, out["UNKNOWN"])
	assert.Equal(t, "UPI000002ED67", out["Q53GA5"][0].UPI)
	assert.Equal(t, int32(len(accs)), calls.Load())
}

func TestMapAccessionsStopsOnFailure(t *testing.T) {
	c := newTestClient(t, func(string) (int, string) {
		return http.StatusInternalServerError, `<soap:Fault><faultcode>soap:Server</faultcode><faultstring>overloaded</faultstring></soap:Fault>`
	})

	_, err := c.MapAccessions(context.Background(), []string{"P1", "P2"}, Options{})
	assert.True(t, bridge.IsKind(err, bridge.KindRemote))
}

func TestSplitVersion(t *testing.T) {
	tests := []struct {
		in, acc, version string
	}{
		{in: "NP_000537.3", acc: "NP_000537", version: "3"},
		{in: "P04637", acc: "P04637"},
		{in: "ENSP00000269305.4", acc: "ENSP00000269305", version: "4"},
		{in: "weird.name", acc: "weird.name"},
		{in: "trailing.", acc: "trailing."},
	}
	for _, tt := range tests {
		acc, version := splitVersion(tt.in)
		assert.Equal(t, tt.acc, acc, tt.in)
		assert.Equal(t, tt.version, version, tt.in)
	}
}
