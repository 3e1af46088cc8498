package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	boltdb "github.com/andrew-solarstorm/bolt-db"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/hxuan190/swap-gateway/internal/domain"
)

const (
	ChainsBucket = "chains"
	TokensBucket = "tokens"

	DefaultDBPath = "./data/catalog.db"
)

// Storage persists the chain/token catalog so restarts serve reference
// data before the first upstream refresh lands.
type Storage struct {
	db     *boltdb.BoltDatabase
	dbPath string
}

func NewStorage(dbPath string) (*Storage, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	os.MkdirAll(filepath.Dir(dbPath), 0755)

	db := boltdb.NewBoltDatabase(dbPath)
	if db == nil {
		return nil, fmt.Errorf("failed to open database at %s", dbPath)
	}

	log.Info().Str("path", dbPath).Msg("[catalogStorage] opened database")

	return &Storage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) SaveChains(chains []domain.Chain) error {
	if len(chains) == 0 {
		return nil
	}

	batch := s.db.NewBatch()
	for _, chain := range chains {
		data, err := sonic.Marshal(chain)
		if err != nil {
			return fmt.Errorf("failed to marshal chain %s: %w", chain.ID, err)
		}

		value := data
		op := &boltdb.WriteOperation{
			Bucket: []byte(ChainsBucket),
			Key:    []byte(chain.ID),
			Value:  &value,
			Op:     boltdb.OpSet,
		}
		if err := batch.Add(op); err != nil {
			return fmt.Errorf("failed to add chain %s to batch: %w", chain.ID, err)
		}
	}

	if err := batch.Execute(); err != nil {
		log.Error().Err(err).Int("count", len(chains)).Msg("[catalogStorage] FAILED to save chains")
		return err
	}

	log.Info().Int("count", len(chains)).Msg("[catalogStorage] saved chains")
	return nil
}

func (s *Storage) LoadChains() ([]domain.Chain, error) {
	data, err := s.db.List(ChainsBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list chains: %w", err)
	}

	chains := make([]domain.Chain, 0, len(data))
	for id, value := range data {
		var chain domain.Chain
		if err := sonic.Unmarshal(value, &chain); err != nil {
			log.Warn().Str("id", id).Err(err).Msg("[catalogStorage] failed to unmarshal chain, skipping")
			continue
		}
		chains = append(chains, chain)
	}

	return chains, nil
}

// SaveTokens stores one chain's token list under its chain id.
func (s *Storage) SaveTokens(chainID int, tokens []domain.Token) error {
	data, err := sonic.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens for chain %d: %w", chainID, err)
	}
	return s.db.Set(TokensBucket, []byte(strconv.Itoa(chainID)), data)
}

func (s *Storage) LoadAllTokens() (map[int][]domain.Token, error) {
	data, err := s.db.List(TokensBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	tokens := make(map[int][]domain.Token, len(data))
	unmarshalFailed := 0
	for key, value := range data {
		chainID, err := strconv.Atoi(key)
		if err != nil {
			log.Warn().Str("key", key).Msg("[catalogStorage] non-numeric token bucket key, skipping")
			continue
		}

		var list []domain.Token
		if err := sonic.Unmarshal(value, &list); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("[catalogStorage] failed to unmarshal tokens, skipping")
			unmarshalFailed++
			continue
		}
		tokens[chainID] = list
	}

	if unmarshalFailed > 0 {
		log.Error().
			Int("total_in_db", len(data)).
			Int("loaded", len(tokens)).
			Int("unmarshal_failed", unmarshalFailed).
			Msg("[catalogStorage] token loading completed with errors")
	}

	return tokens, nil
}
