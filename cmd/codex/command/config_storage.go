package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-codex/internal/codex"
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Items    AssetConfig[*items.Item]         `json:"items"`
	Craft    AssetConfig[*codex.CraftRecipe]  `json:"craft"`
	Research AssetConfig[*codex.ResearchCost] `json:"research"`
	Recycle  AssetConfig[*codex.RecycleYield] `json:"recycle"`

	// Durability is keyed three ways: item ids, block names, other names.
	DurabilityItems  AssetConfig[*codex.DurabilitySet] `json:"durability_items"`
	DurabilityBlocks AssetConfig[*codex.DurabilitySet] `json:"durability_blocks"`
	DurabilityOther  AssetConfig[*codex.DurabilitySet] `json:"durability_other"`
}

func (c *StorageConfig) BuildDictionary() (*codex.Dictionary, error) {
	itemStore, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	craft, err := c.Craft.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating craft store: %w", err)
	}
	research, err := c.Research.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating research store: %w", err)
	}
	recycle, err := c.Recycle.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating recycle store: %w", err)
	}
	durItems, err := c.DurabilityItems.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating durability item store: %w", err)
	}
	durBlocks, err := c.DurabilityBlocks.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating durability block store: %w", err)
	}
	durOther, err := c.DurabilityOther.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating durability other store: %w", err)
	}

	dict := &codex.Dictionary{
		Items:            itemStore,
		Craft:            craft,
		Research:         research,
		Recycle:          recycle,
		DurabilityItems:  durItems,
		DurabilityBlocks: durBlocks,
		DurabilityOther:  durOther,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Items.Validate("items"))
	el.Add(c.Craft.Validate("craft"))
	el.Add(c.Research.Validate("research"))
	el.Add(c.Recycle.Validate("recycle"))
	el.Add(c.DurabilityItems.Validate("durability_items"))
	el.Add(c.DurabilityBlocks.Validate("durability_blocks"))
	el.Add(c.DurabilityOther.Validate("durability_other"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
