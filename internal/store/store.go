// Package store keeps the contact list and settings as JSON blobs in a local
// SQLite key-value table. Every mutation rewrites the whole blob.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	contactsKey = "networkNavigatorContacts"
	settingsKey = "networkNavigatorSettings"
)

var (
	ErrNotFound      = errors.New("contact not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidBackup = errors.New("invalid backup: missing contacts array")
)

type Store struct {
	db       *sql.DB
	path     string
	mu       sync.RWMutex
	contacts []models.Contact
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates or opens the database at path and loads the contact list.
func Open(path string, opts ...Option) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{
		db:     db,
		path:   path,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	raw, ok, err := s.get(contactsKey)
	if err != nil {
		return err
	}
	if !ok {
		s.contacts = []models.Contact{}
		return nil
	}

	var contacts []models.Contact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		s.logger.Warn("stored contacts are unreadable, starting empty", zap.Error(err))
		contacts = []models.Contact{}
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	s.contacts = contacts
	return nil
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// persist must be called with mu held for writing.
func (s *Store) persist() error {
	return s.put(contactsKey, s.contacts)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

type Filter struct {
	Tag    string
	Warmth models.WarmthLevel
}

func (s *Store) List(f Filter) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if f.Tag != "" && !c.HasTag(f.Tag) {
			continue
		}
		if f.Warmth != "" && c.WarmthLevel != f.Warmth {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *Store) Get(id string) (models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Contact{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.contacts[i], nil
}

func (s *Store) indexOf(id string) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ContactInput holds the editable contact fields.
type ContactInput struct {
	Name        string             `json:"name"`
	Company     string             `json:"company"`
	Role        string             `json:"role"`
	LinkedIn    string             `json:"linkedin"`
	HowWeMet    string             `json:"howWeMet"`
	Interests   string             `json:"interests"`
	Notes       string             `json:"notes"`
	Tags        []string           `json:"tags"`
	WarmthLevel models.WarmthLevel `json:"warmthLevel"`
}

func (in ContactInput) validate() (ContactInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.WarmthLevel == "" {
		in.WarmthLevel = models.WarmthCold
	}
	if !in.WarmthLevel.IsValid() {
		return in, fmt.Errorf("%w: unknown warmth level %q", ErrInvalidInput, in.WarmthLevel)
	}
	in.Tags = cleanTags(in.Tags)
	return in, nil
}

// ParseTags splits a comma-separated tag list.
func ParseTags(s string) []string {
	return cleanTags(strings.Split(s, ","))
}

func cleanTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (in ContactInput) apply(c *models.Contact) {
	c.Name = in.Name
	c.Company = in.Company
	c.Role = in.Role
	c.LinkedIn = in.LinkedIn
	c.HowWeMet = in.HowWeMet
	c.Interests = in.Interests
	c.Notes = in.Notes
	c.Tags = in.Tags
	c.WarmthLevel = in.WarmthLevel
}

func (s *Store) Create(in ContactInput) (models.Contact, error) {
	in, err := in.validate()
	if err != nil {
		return models.Contact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Contact{
		ID:           s.newID(),
		Interactions: []models.Interaction{},
		CreatedAt:    s.timestamp(),
	}
	in.apply(&c)

	s.contacts = append(s.contacts, c)
	if err := s.persist(); err != nil {
		s.contacts = s.contacts[:len(s.contacts)-1]
		return models.Contact{}, err
	}

	s.logger.Debug("contact created", zap.String("id", c.ID))
	return c, nil
}

// Update replaces the editable fields. Identity, history and timestamps stay.
func (s *Store) Update(id string, in ContactInput) (models.Contact, error) {
	in, err := in.validate()
	if err != nil {
		return models.Contact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Contact{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	prev := s.contacts[i]
	updated := prev
	in.apply(&updated)
	s.contacts[i] = updated

	if err := s.persist(); err != nil {
		s.contacts[i] = prev
		return models.Contact{}, err
	}
	return updated, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	prev := s.contacts
	next := make([]models.Contact, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	s.contacts = next

	if err := s.persist(); err != nil {
		s.contacts = prev
		return err
	}
	return nil
}

func (s *Store) AddInteraction(contactID, kind, notes string) (models.Interaction, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return models.Interaction{}, fmt.Errorf("%w: interaction type is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(contactID)
	if i < 0 {
		return models.Interaction{}, fmt.Errorf("%w: %s", ErrNotFound, contactID)
	}

	prev := s.contacts[i]
	interaction := s.appendInteraction(i, kind, notes)
	if err := s.persist(); err != nil {
		s.contacts[i] = prev
		return models.Interaction{}, err
	}
	return interaction, nil
}

// appendInteraction copies the contact's history so a failed persist leaves
// earlier snapshots untouched. mu must be held.
func (s *Store) appendInteraction(i int, kind, notes string) models.Interaction {
	now := s.timestamp()
	interaction := models.Interaction{
		ID:    s.newID(),
		Type:  kind,
		Notes: notes,
		Date:  now,
	}

	c := s.contacts[i]
	history := make([]models.Interaction, 0, len(c.Interactions)+1)
	history = append(history, c.Interactions...)
	c.Interactions = append(history, interaction)
	c.LastContactDate = &now
	s.contacts[i] = c

	return interaction
}

type GeneratedMessage struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	LinkedIn string `json:"linkedin"`
	Message  string `json:"message"`
}

// SaveGeneratedMessage records msg on the contact whose name matches
// case-insensitively, creating the contact when none does.
func (s *Store) SaveGeneratedMessage(msg GeneratedMessage) (models.Contact, error) {
	name := strings.TrimSpace(msg.Name)
	if name == "" || strings.TrimSpace(msg.Message) == "" {
		return models.Contact{}, fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.contacts
	i := -1
	for j, c := range s.contacts {
		if strings.EqualFold(c.Name, name) {
			i = j
			break
		}
	}

	s.contacts = append(make([]models.Contact, 0, len(prev)+1), prev...)
	if i < 0 {
		s.contacts = append(s.contacts, models.Contact{
			ID:           s.newID(),
			Name:         name,
			Company:      msg.Company,
			Role:         msg.Role,
			LinkedIn:     msg.LinkedIn,
			HowWeMet:     "Message Generator",
			Tags:         []string{},
			WarmthLevel:  models.WarmthCold,
			Interactions: []models.Interaction{},
			CreatedAt:    s.timestamp(),
		})
		i = len(s.contacts) - 1
	}

	s.appendInteraction(i, models.InteractionGeneratedMessage, "Generated message: "+msg.Message)
	if err := s.persist(); err != nil {
		s.contacts = prev
		return models.Contact{}, err
	}
	return s.contacts[i], nil
}

// Tags returns the distinct tags in use, sorted.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	var out []string
	for _, c := range s.contacts {
		for _, t := range c.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

func (s *Store) Export() models.Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]models.Contact, len(s.contacts))
	copy(contacts, s.contacts)
	return models.Backup{
		Contacts:   contacts,
		ExportDate: s.timestamp(),
		Version:    models.BackupVersion,
	}
}

// Import replaces every contact with the backup's.
func (s *Store) Import(b models.Backup) (int, error) {
	if b.Contacts == nil {
		return 0, ErrInvalidBackup
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.contacts
	s.contacts = b.Contacts
	if err := s.persist(); err != nil {
		s.contacts = prev
		return 0, err
	}

	s.logger.Info("contacts imported", zap.Int("count", len(b.Contacts)))
	return len(b.Contacts), nil
}

// DecodeBackup parses a backup file, rejecting payloads without a contacts array.
func DecodeBackup(data []byte) (models.Backup, error) {
	var head struct {
		Contacts json.RawMessage `json:"contacts"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return models.Backup{}, fmt.Errorf("failed to parse backup: %w", err)
	}
	if len(head.Contacts) == 0 || head.Contacts[0] != '[' {
		return models.Backup{}, ErrInvalidBackup
	}

	var b models.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return models.Backup{}, fmt.Errorf("failed to parse backup: %w", err)
	}
	if b.Contacts == nil {
		b.Contacts = []models.Contact{}
	}
	return b, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.contacts
	s.contacts = []models.Contact{}
	if err := s.persist(); err != nil {
		s.contacts = prev
		return err
	}
	return nil
}

func (s *Store) Settings() (models.Settings, error) {
	settings := models.DefaultSettings()

	raw, ok, err := s.get(settingsKey)
	if err != nil {
		return settings, err
	}
	if !ok {
		return settings, nil
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn("stored settings are unreadable, using defaults", zap.Error(err))
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	switch settings.AIModel {
	case models.AIModelSimple, models.AIModelGemini:
	case "":
		settings.AIModel = models.AIModelSimple
	default:
		return fmt.Errorf("%w: unknown ai model %q", ErrInvalidInput, settings.AIModel)
	}
	return s.put(settingsKey, settings)
}
