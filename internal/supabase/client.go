package supabase

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"inventory-workflow-backend/internal/config"
	"inventory-workflow-backend/internal/models"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// PresetClient reads category presets through the hosted PostgREST API.
type PresetClient struct {
	client *supabase.Client
}

func NewPresetClient(client *Client) *PresetClient {
	return &PresetClient{client: client.Supabase}
}

// ListPresets returns the presets in creation order, same as the SQL store.
func (p *PresetClient) ListPresets(ctx context.Context) ([]models.CategoryPreset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []models.CategoryPreset
	_, err := p.client.From("category_presets").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w: %v", models.ErrStoreUnavailable, err)
	}
	return rows, nil
}
