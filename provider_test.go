package valuedomain

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testSnapshot() *ZoneSnapshot {
	return &ZoneSnapshot{
		DomainID: "12345",
		Domain:   "example.com",
		TTL:      3600,
		NSType:   "valuedomain1",
		Records: RecordSet{
			{Type: "a", Name: "www", Content: "1.2.3.4"},
			{Type: "cname", Name: "foo", Content: "example.com."},
		},
	}
}

func newTestProvider(client Client, ttl int) *Provider {
	return NewProvider(client, Config{
		Token:  "test-token",
		Domain: "example.com",
		TTL:    ttl,
	})
}

func TestProvider_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)

	provider := newTestProvider(client, 0)
	require.NoError(t, provider.Authenticate(ctx))
}

func TestProvider_Authenticate_DomainNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(nil, ErrDomainNotFound)

	provider := newTestProvider(client, 0)
	assert.True(t, errors.Is(provider.Authenticate(ctx), ErrDomainNotFound))
}

func TestProvider_ListRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)

	provider := newTestProvider(client, 0)
	records, err := provider.ListRecords(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{
			ID:      "9facceb",
			Type:    "A",
			Name:    "www.example.com",
			TTL:     time.Hour,
			Content: "1.2.3.4",
		},
		{
			ID:      "a963c31",
			Type:    "CNAME",
			Name:    "foo.example.com",
			TTL:     time.Hour,
			Content: "example.com.",
		},
	}, records)

	require.Len(t, records[0].ID, 7)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestProvider_ListRecords_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil).Times(3)

	provider := newTestProvider(client, 0)

	records, err := provider.ListRecords(ctx, Filter{Type: "A"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "www.example.com", records[0].Name)

	// filter names may be fully-qualified
	records, err = provider.ListRecords(ctx, Filter{Name: "foo.example.com"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CNAME", records[0].Type)

	records, err = provider.ListRecords(ctx, Filter{Type: "ns"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProvider_CreateRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			assert.Equal(t, "a www 1.2.3.4\ncname foo example.com.\ntxt @ v=spf1 -all", snapshot.Records.Serialize())
			assert.Equal(t, 3600, snapshot.TTL)
			assert.Equal(t, "valuedomain1", snapshot.NSType)
			return nil
		})

	provider := newTestProvider(client, 0)
	ok, err := provider.CreateRecord(ctx, "TXT", "@", "v=spf1 -all")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_CreateRecord_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)

	// no StoreZone: the record is already present
	provider := newTestProvider(client, 0)
	ok, err := provider.CreateRecord(ctx, "A", "www", "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_CreateRecord_CNAMECanonicalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").
		DoAndReturn(func(context.Context, string) (*ZoneSnapshot, error) { return testSnapshot(), nil }).
		Times(2)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			assert.Equal(t, Triplet{Type: "cname", Name: "bar", Content: "target.example.org."}, snapshot.Records[2])
			return nil
		})

	provider := newTestProvider(client, 0)
	ok, err := provider.CreateRecord(ctx, "CNAME", "bar", "target.example.org")
	require.NoError(t, err)
	assert.True(t, ok)

	// the existing foo CNAME already carries a trailing dot, creating it
	// again without one must still be a no-op
	ok, err = provider.CreateRecord(ctx, "CNAME", "foo", "example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_CreateRecord_Apex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			assert.Equal(t, Triplet{Type: "a", Name: "@", Content: "5.6.7.8"}, snapshot.Records[2])
			return nil
		})

	provider := newTestProvider(client, 0)
	ok, err := provider.CreateRecord(ctx, "A", "example.com", "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_UpdateRecord_ByIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			// replaced in place at its original line position
			assert.Equal(t, "a www 5.6.7.8\ncname foo example.com.", snapshot.Records.Serialize())
			return nil
		})

	provider := newTestProvider(client, 0)
	ok, err := provider.UpdateRecord(ctx, Filter{
		ID:      "9facceb",
		Type:    "A",
		Name:    "www",
		Content: "5.6.7.8",
	})

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_UpdateRecord_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			assert.Equal(t, "a www 1.2.3.4\ncname foo example.com.\naaaa www 2001:db8::1", snapshot.Records.Serialize())
			return nil
		})

	provider := newTestProvider(client, 0)
	ok, err := provider.UpdateRecord(ctx, Filter{
		Type:    "AAAA",
		Name:    "www",
		Content: "2001:db8::1",
	})

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_UpdateRecord_InvalidArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	provider := newTestProvider(NewMockClient(ctrl), 0)

	for _, filter := range []Filter{
		{},
		{Type: "A", Name: "www"},
		{Type: "A", Content: "1.2.3.4"},
		{Name: "www", Content: "1.2.3.4"},
		{ID: "9facceb"},
	} {
		_, err := provider.UpdateRecord(ctx, filter)
		assert.True(t, errors.Is(err, ErrInvalidArguments))
	}
}

func TestProvider_DeleteRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			assert.Equal(t, "cname foo example.com.", snapshot.Records.Serialize())
			return nil
		})

	provider := newTestProvider(client, 0)
	ok, err := provider.DeleteRecord(ctx, Filter{Type: "A", Name: "www.example.com"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_DeleteRecord_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)

	// no StoreZone: nothing matched, nothing written
	provider := newTestProvider(client, 0)
	ok, err := provider.DeleteRecord(ctx, Filter{Type: "NS"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProvider_DeleteRecord_CNAMEContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			assert.Equal(t, "a www 1.2.3.4", snapshot.Records.Serialize())
			return nil
		})

	// content given without a trailing dot still matches the stored form
	provider := newTestProvider(client, 0)
	ok, err := provider.DeleteRecord(ctx, Filter{Type: "CNAME", Content: "example.com"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_TTLOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := NewMockClient(ctrl)
	client.EXPECT().FetchZone(ctx, "example.com").Return(testSnapshot(), nil)
	client.EXPECT().StoreZone(ctx, "example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot *ZoneSnapshot) error {
			assert.Equal(t, 300, snapshot.TTL)
			return nil
		})

	provider := newTestProvider(client, 300)
	ok, err := provider.CreateRecord(ctx, "A", "www2", "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}
