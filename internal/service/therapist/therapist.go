package therapist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/govently/govently_backend/internal/matching"
	"github.com/govently/govently_backend/internal/repo"
	entprofile "github.com/govently/govently_backend/internal/repo/therapistprofile"
)

const filterOptionsCacheKey = "govently:therapist:filter_options"
const filterOptionsCacheTTL = 10 * time.Minute

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type DirectoryRequest struct {
	Specialization *string
	Language       *string
	Insurance      *string
	Gender         *string
	SearchQuery    *string
	Page           int
	PerPage        int
}

type UpsertProfileRequest struct {
	FullName                  string
	Gender                    string
	LicenseType               string
	YearsExperience           int
	YearsPrivatePractice      int
	Specializations           []string
	TherapyApproaches         []string
	ClientDemographics        []string
	SeverityLevels            []string
	Languages                 []string
	AvailabilitySlots         []map[string]string
	SessionDurations          []int
	InsuranceAccepted         []string
	ServicesOffered           []string
	RateIndividual            float64
	RateCouples               float64
	RateFamily                float64
	RateGroup                 float64
	CrisisInterventionTrained bool
	TraumaInformedCertified   bool
	SlidingScaleAvailable     bool
	EmergencyAvailability     bool
	Location                  string
	Bio                       string
}

// FilterOptions holds the distinct values the directory UI can filter by.
type FilterOptions struct {
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	Insurances      []string `json:"insurances"`
	LicenseTypes    []string `json:"license_types"`
	Locations       []string `json:"locations"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Directory lists approved therapists matching the given filters.
	Directory(ctx context.Context, req DirectoryRequest) ([]*repo.TherapistProfile, error)
	GetByID(ctx context.Context, profileID uuid.UUID) (*repo.TherapistProfile, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*repo.TherapistProfile, error)
	FilterOptions(ctx context.Context) (FilterOptions, error)

	// Roster returns all approved profiles converted for the matching
	// engine.
	Roster(ctx context.Context) ([]matching.TherapistProfile, error)

	// Profile lifecycle
	CreateProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.TherapistProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.TherapistProfile, error)
	SetStatus(ctx context.Context, profileID uuid.UUID, status string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type therapistService struct {
	db  *repo.Client
	rdb *goredis.Client
}

func New(db *repo.Client, rdb *goredis.Client) Service {
	return &therapistService{db: db, rdb: rdb}
}

func (s *therapistService) Directory(ctx context.Context, req DirectoryRequest) ([]*repo.TherapistProfile, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.TherapistProfile.Query().
		Where(entprofile.StatusEQ(entprofile.StatusApproved))

	if req.Gender != nil && *req.Gender != "" {
		q = q.Where(entprofile.GenderEQ(entprofile.Gender(*req.Gender)))
	}

	profiles, err := q.Order(entprofile.ByFullName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}

	// Specialization, language, insurance, and free-text filters operate
	// on JSON list columns, so they are applied after the fetch.
	filtered := profiles[:0]
	for _, p := range profiles {
		if req.Specialization != nil && *req.Specialization != "" &&
			!anyContainsFold(p.Specializations, *req.Specialization) {
			continue
		}
		if req.Language != nil && *req.Language != "" &&
			!anyEqualFold(p.Languages, *req.Language) {
			continue
		}
		if req.Insurance != nil && *req.Insurance != "" &&
			!anyEqualFold(p.InsuranceAccepted, *req.Insurance) {
			continue
		}
		if req.SearchQuery != nil && *req.SearchQuery != "" &&
			!matchesSearch(p, *req.SearchQuery) {
			continue
		}
		filtered = append(filtered, p)
	}

	start := (req.Page - 1) * req.PerPage
	if start >= len(filtered) {
		return []*repo.TherapistProfile{}, nil
	}
	end := start + req.PerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], nil
}

func (s *therapistService) GetByID(ctx context.Context, profileID uuid.UUID) (*repo.TherapistProfile, error) {
	p, err := s.db.TherapistProfile.Query().
		Where(entprofile.ID(profileID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	return p, nil
}

func (s *therapistService) GetByUser(ctx context.Context, userID uuid.UUID) (*repo.TherapistProfile, error) {
	p, err := s.db.TherapistProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get therapist by user: %w", err)
	}
	return p, nil
}

func (s *therapistService) FilterOptions(ctx context.Context) (FilterOptions, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, filterOptionsCacheKey).Bytes(); err == nil {
			var cached FilterOptions
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	profiles, err := s.db.TherapistProfile.Query().
		Where(entprofile.StatusEQ(entprofile.StatusApproved)).
		All(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list therapists: %w", err)
	}

	specs := map[string]struct{}{}
	langs := map[string]struct{}{}
	ins := map[string]struct{}{}
	licenses := map[string]struct{}{}
	locations := map[string]struct{}{}
	for _, p := range profiles {
		for _, v := range p.Specializations {
			specs[v] = struct{}{}
		}
		for _, v := range p.Languages {
			langs[v] = struct{}{}
		}
		for _, v := range p.InsuranceAccepted {
			ins[v] = struct{}{}
		}
		if p.LicenseType != "" {
			licenses[p.LicenseType] = struct{}{}
		}
		if p.Location != "" {
			locations[p.Location] = struct{}{}
		}
	}

	opts := FilterOptions{
		Specializations: sortedKeys(specs),
		Languages:       sortedKeys(langs),
		Insurances:      sortedKeys(ins),
		LicenseTypes:    sortedKeys(licenses),
		Locations:       sortedKeys(locations),
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(opts); err == nil {
			if err := s.rdb.Set(ctx, filterOptionsCacheKey, raw, filterOptionsCacheTTL).Err(); err != nil {
				slog.Warn("cache filter options", "error", err)
			}
		}
	}

	return opts, nil
}

func (s *therapistService) Roster(ctx context.Context) ([]matching.TherapistProfile, error) {
	profiles, err := s.db.TherapistProfile.Query().
		Where(entprofile.StatusEQ(entprofile.StatusApproved)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}

	roster := make([]matching.TherapistProfile, 0, len(profiles))
	for _, p := range profiles {
		roster = append(roster, ToMatchingProfile(p))
	}
	return roster, nil
}

func (s *therapistService) CreateProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.TherapistProfile, error) {
	exists, err := s.db.TherapistProfile.Query().
		Where(entprofile.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	p, err := applyProfile(s.db.TherapistProfile.Create().SetUserID(userID), req).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.invalidateFilterOptions(ctx)
	return p, nil
}

func (s *therapistService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.TherapistProfile, error) {
	existing, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := applyProfileUpdate(s.db.TherapistProfile.UpdateOne(existing), req).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.invalidateFilterOptions(ctx)
	return p, nil
}

func (s *therapistService) SetStatus(ctx context.Context, profileID uuid.UUID, status string) error {
	updated, err := s.db.TherapistProfile.Update().
		Where(entprofile.ID(profileID)).
		SetStatus(entprofile.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if updated == 0 {
		return ErrNotFound
	}
	s.invalidateFilterOptions(ctx)
	return nil
}

func (s *therapistService) invalidateFilterOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, filterOptionsCacheKey).Err(); err != nil {
		slog.Warn("invalidate filter options cache", "error", err)
	}
}

// ---------------------------------------------------------------------------
// Conversion
// ---------------------------------------------------------------------------

// ToMatchingProfile converts a stored profile into the matching engine's
// input shape.
func ToMatchingProfile(p *repo.TherapistProfile) matching.TherapistProfile {
	slots := make([]matching.AvailabilitySlot, 0, len(p.AvailabilitySlots))
	for _, s := range p.AvailabilitySlots {
		slots = append(slots, matching.AvailabilitySlot{
			Day:       s["day"],
			StartTime: s["start_time"],
			EndTime:   s["end_time"],
		})
	}

	return matching.TherapistProfile{
		ID:                        p.ID.String(),
		FullName:                  p.FullName,
		Gender:                    string(p.Gender),
		LicenseType:               p.LicenseType,
		YearsExperience:           p.YearsExperience,
		YearsPrivatePractice:      p.YearsPrivatePractice,
		Specializations:           p.Specializations,
		TherapyApproaches:         p.TherapyApproaches,
		ClientDemographics:        p.ClientDemographics,
		SeverityLevels:            p.SeverityLevels,
		Languages:                 p.Languages,
		AvailabilitySlots:         slots,
		SessionDurations:          p.SessionDurations,
		InsuranceAccepted:         p.InsuranceAccepted,
		HourlyRates: matching.HourlyRates{
			Individual: p.RateIndividual,
			Couples:    p.RateCouples,
			Family:     p.RateFamily,
			Group:      p.RateGroup,
		},
		Location:                  p.Location,
		ServicesOffered:           p.ServicesOffered,
		CrisisInterventionTrained: p.CrisisInterventionTrained,
		TraumaInformedCertified:   p.TraumaInformedCertified,
		SlidingScaleAvailable:     p.SlidingScaleAvailable,
		EmergencyAvailability:     p.EmergencyAvailability,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func applyProfile(c *repo.TherapistProfileCreate, req UpsertProfileRequest) *repo.TherapistProfileCreate {
	return c.
		SetFullName(req.FullName).
		SetGender(entprofile.Gender(req.Gender)).
		SetLicenseType(req.LicenseType).
		SetYearsExperience(req.YearsExperience).
		SetYearsPrivatePractice(req.YearsPrivatePractice).
		SetSpecializations(req.Specializations).
		SetTherapyApproaches(req.TherapyApproaches).
		SetClientDemographics(req.ClientDemographics).
		SetSeverityLevels(req.SeverityLevels).
		SetLanguages(req.Languages).
		SetAvailabilitySlots(req.AvailabilitySlots).
		SetSessionDurations(req.SessionDurations).
		SetInsuranceAccepted(req.InsuranceAccepted).
		SetServicesOffered(req.ServicesOffered).
		SetRateIndividual(req.RateIndividual).
		SetRateCouples(req.RateCouples).
		SetRateFamily(req.RateFamily).
		SetRateGroup(req.RateGroup).
		SetCrisisInterventionTrained(req.CrisisInterventionTrained).
		SetTraumaInformedCertified(req.TraumaInformedCertified).
		SetSlidingScaleAvailable(req.SlidingScaleAvailable).
		SetEmergencyAvailability(req.EmergencyAvailability).
		SetLocation(req.Location).
		SetBio(req.Bio)
}

func applyProfileUpdate(u *repo.TherapistProfileUpdateOne, req UpsertProfileRequest) *repo.TherapistProfileUpdateOne {
	return u.
		SetFullName(req.FullName).
		SetGender(entprofile.Gender(req.Gender)).
		SetLicenseType(req.LicenseType).
		SetYearsExperience(req.YearsExperience).
		SetYearsPrivatePractice(req.YearsPrivatePractice).
		SetSpecializations(req.Specializations).
		SetTherapyApproaches(req.TherapyApproaches).
		SetClientDemographics(req.ClientDemographics).
		SetSeverityLevels(req.SeverityLevels).
		SetLanguages(req.Languages).
		SetAvailabilitySlots(req.AvailabilitySlots).
		SetSessionDurations(req.SessionDurations).
		SetInsuranceAccepted(req.InsuranceAccepted).
		SetServicesOffered(req.ServicesOffered).
		SetRateIndividual(req.RateIndividual).
		SetRateCouples(req.RateCouples).
		SetRateFamily(req.RateFamily).
		SetRateGroup(req.RateGroup).
		SetCrisisInterventionTrained(req.CrisisInterventionTrained).
		SetTraumaInformedCertified(req.TraumaInformedCertified).
		SetSlidingScaleAvailable(req.SlidingScaleAvailable).
		SetEmergencyAvailability(req.EmergencyAvailability).
		SetLocation(req.Location).
		SetBio(req.Bio)
}

func anyContainsFold(values []string, sub string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func anyEqualFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func matchesSearch(p *repo.TherapistProfile, query string) bool {
	if strings.Contains(strings.ToLower(p.FullName), strings.ToLower(query)) {
		return true
	}
	return anyContainsFold(p.Specializations, query)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
