package memory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const seedDateLayout = "2006-01-02"

type Seed struct {
	Balances []SeedBalance `yaml:"balances"`
	Courses  []SeedCourse  `yaml:"courses"`
}

type SeedBalance struct {
	UserID  int    `yaml:"user_id"`
	Balance string `yaml:"balance"`
}

type SeedCourse struct {
	ID        int         `yaml:"id"`
	Author    string      `yaml:"author"`
	Title     string      `yaml:"title"`
	StartDate string      `yaml:"start_date"`
	Price     string      `yaml:"price"`
	Available bool        `yaml:"available"`
	Groups    []SeedGroup `yaml:"groups"`
}

type SeedGroup struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Number      int    `yaml:"number"`
	Capacity    int    `yaml:"capacity"`
	MemberCount int    `yaml:"member_count"`
}

func DecodeSeed(r io.Reader) (Seed, error) {
	var seed Seed

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, fmt.Errorf("failed to decode seed: %w", err)
	}

	return seed, nil
}

func (s *Store) LoadSeedFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	seed, err := DecodeSeed(file)
	if err != nil {
		return err
	}

	return s.ApplySeed(seed)
}

func (s *Store) ApplySeed(seed Seed) error {
	for _, seedBalance := range seed.Balances {
		balance, err := decimal.NewFromString(seedBalance.Balance)
		if err != nil {
			return fmt.Errorf("invalid balance of user %d: %w", seedBalance.UserID, err)
		}

		if balance.IsNegative() {
			return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("negative balance of user %d", seedBalance.UserID)}
		}

		s.SetBalance(seedBalance.UserID, balance)
	}

	for _, seedCourse := range seed.Courses {
		course, groups, err := seedCourse.toDomain()
		if err != nil {
			return err
		}

		if err := s.AddCourse(course, groups...); err != nil {
			return err
		}
	}

	return nil
}

func (sc SeedCourse) toDomain() (domain.Course, []domain.Group, error) {
	price, err := decimal.NewFromString(sc.Price)
	if err != nil {
		return domain.Course{}, nil, fmt.Errorf("invalid price of course %d: %w", sc.ID, err)
	}

	if price.IsNegative() {
		return domain.Course{}, nil, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("negative price of course %d", sc.ID)}
	}

	var startDate time.Time
	if sc.StartDate != "" {
		startDate, err = time.Parse(seedDateLayout, sc.StartDate)
		if err != nil {
			return domain.Course{}, nil, fmt.Errorf("invalid start date of course %d: %w", sc.ID, err)
		}
	}

	course := domain.Course{
		ID:        sc.ID,
		Author:    sc.Author,
		Title:     sc.Title,
		StartDate: startDate,
		Price:     price,
		Available: sc.Available,
	}

	groups := make([]domain.Group, 0, len(sc.Groups))
	for _, seedGroup := range sc.Groups {
		groups = append(groups, domain.Group{
			ID:          seedGroup.ID,
			CourseID:    sc.ID,
			Title:       seedGroup.Title,
			Number:      seedGroup.Number,
			Capacity:    seedGroup.Capacity,
			MemberCount: seedGroup.MemberCount,
		})
	}

	return course, groups, nil
}
