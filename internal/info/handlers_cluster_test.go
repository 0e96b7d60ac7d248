package info

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/info/infotest"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

func TestFetchAttributesAssembly(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpClusterConfig] = map[string]any{"name": "cluster-1"}
	mock.Responses[infotest.OpClusterExternalIPs] = []string{"10.0.0.1", "10.0.0.2"}
	mock.Responses[infotest.OpClusterIdentity] = map[string]any{"logon": map[string]any{"motd": "hi"}}
	mock.Responses[infotest.OpClusterOwner] = map[string]any{"company": "Example Corp"}
	mock.Responses[infotest.OpClusterVersion] = map[string]any{"nodes": []any{}}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"attributes"}})

	value, err := fetchAttributes(context.Background(), mock, rc)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"Config":          map[string]any{"name": "cluster-1"},
		"Contact_Info":    map[string]any{"company": "Example Corp"},
		"External_IP":     map[string]any{"External IPs": "10.0.0.1,10.0.0.2"},
		"Logon_msg":       map[string]any{"logon": map[string]any{"motd": "hi"}},
		"Cluster_Version": map[string]any{"nodes": []any{}},
	}, value)
}

func TestFetchAttributesFailsOnAnySubCall(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Errors[infotest.OpClusterOwner] = errors.New("timeout")
	rc := mustRequestContext(t, Params{GatherSubset: []string{"attributes"}})

	value, err := fetchAttributes(context.Background(), mock, rc)
	assert.Nil(t, value)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, CategoryAttributes, fetchErr.Category)
	// The version call comes after owner and must not run.
	assert.Equal(t, 0, mock.CallCount(infotest.OpClusterVersion))
}

func TestFetchClientsProjection(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpSummaryClients] = &onefs.ClientSummaryResponse{
		Clients: []onefs.ClientSummaryEntry{{
			LocalAddr:  "10.1.1.1",
			LocalName:  "node-1",
			RemoteAddr: "10.2.2.2",
			RemoteName: "workstation",
			Node:       1,
			Protocol:   "nfs3",
		}},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"clients"}})

	value, err := fetchClients(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{
		"local_address":  "10.1.1.1",
		"local_name":     "node-1",
		"remote_address": "10.2.2.2",
		"remote_name":    "workstation",
		"node":           float64(1),
		"protocol":       "nfs3",
	}}, value)
}

func TestFetchClusterIdentityPassthrough(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpClusterIdentity] = map[string]any{
		"name":        "cluster-1",
		"description": "lab cluster",
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"cluster_identity"}})

	value, err := fetchClusterIdentity(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, mock.Responses[infotest.OpClusterIdentity], value)
}
