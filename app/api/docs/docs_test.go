package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	parsed := struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]interface{} `json:"paths"`
		Definitions map[string]interface{}            `json:"definitions"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "Listing API", parsed.Info.Title)
	require.Contains(t, parsed.Paths["/purchases"], "post")
	require.Contains(t, parsed.Paths["/listings/{owner}/{name}"], "patch")
	require.Contains(t, parsed.Paths["/balances/{address}/deposit"], "post")
	require.Contains(t, parsed.Definitions, "receipt.Receipt")
}
