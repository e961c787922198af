package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"wordroom/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// marks is shorthand for building expected results
func marks(ms ...model.Mark) []model.Mark {
	return ms
}

const (
	hit     = model.MarkHit
	present = model.MarkPresent
	miss    = model.MarkMiss
)

// Reference table for duplicate-letter handling. Every case follows the
// official counted two-pass rules: hits consume answer letters first, then
// presents are granted only while that letter's remaining count lasts.
func (s *ServiceSuite) TestDuplicateLetterReferenceTable() {
	cases := []struct {
		name   string
		answer string
		guess  string
		want   []model.Mark
	}{
		{"alloy-lilac", "ALLOY", "LILAC", marks(present, miss, hit, present, miss)},
		{"alloy-llama", "ALLOY", "LLAMA", marks(present, hit, present, miss, miss)},
		{"silly-llama", "SILLY", "LLAMA", marks(present, present, miss, miss, miss)},
		{"speed-erase", "SPEED", "ERASE", marks(present, miss, miss, present, present)},
		{"banal-annal", "BANAL", "ANNAL", marks(present, miss, hit, hit, hit)},
		{"eagle-geese", "EAGLE", "GEESE", marks(present, present, miss, miss, hit)},
		{"abbey-babes", "ABBEY", "BABES", marks(present, present, hit, hit, miss)},
		{"robot-otter", "ROBOT", "OTTER", marks(present, present, miss, miss, present)},
		{"floor-lolly", "FLOOR", "LOLLY", marks(present, present, miss, miss, miss)},
		{"sassy-asses", "SASSY", "ASSES", marks(present, present, hit, miss, present)},
		{"crane-crate", "CRANE", "CRATE", marks(hit, hit, hit, miss, hit)},
		{"crane-crane", "CRANE", "CRANE", marks(hit, hit, hit, hit, hit)},
		{"light-mouse", "LIGHT", "MOUSE", marks(miss, miss, miss, miss, miss)},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, err := s.service.Score(tc.answer, tc.guess)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *ServiceSuite) TestScoreIsCaseInsensitive() {
	upper, err := s.service.Score("CRANE", "CRATE")
	s.Require().NoError(err)

	lower, err := s.service.Score("crane", "crate")
	s.Require().NoError(err)

	mixed, err := s.service.Score("Crane", " cRaTe ")
	s.Require().NoError(err)

	s.Equal(upper, lower)
	s.Equal(upper, mixed)
}

func (s *ServiceSuite) TestScoreIsDeterministic() {
	first, err := s.service.Score("robot", "otter")
	s.Require().NoError(err)

	for i := 0; i < 10; i++ {
		again, err := s.service.Score("robot", "otter")
		s.Require().NoError(err)
		s.Equal(first, again)
	}
}

func (s *ServiceSuite) TestScoreRejectsMalformedInput() {
	cases := []struct {
		name   string
		answer string
		guess  string
	}{
		{"short guess", "crane", "cat"},
		{"long guess", "crane", "cranes"},
		{"empty guess", "crane", ""},
		{"digits", "crane", "cr4ne"},
		{"punctuation", "crane", "cra-e"},
		{"non-ascii", "crane", "cråne"},
		{"short answer", "cran", "crane"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Score(tc.answer, tc.guess)
			s.ErrorIs(err, model.ErrMalformedGuess)
		})
	}
}

func (s *ServiceSuite) TestValidateFormat() {
	s.NoError(s.service.ValidateFormat("crane"))
	s.ErrorIs(s.service.ValidateFormat("cranes"), model.ErrMalformedGuess)
	s.ErrorIs(s.service.ValidateFormat("cr4ne"), model.ErrMalformedGuess)
	// ValidateFormat expects normalized input; uppercase is not normalized
	s.ErrorIs(s.service.ValidateFormat("CRANE"), model.ErrMalformedGuess)
}

func (s *ServiceSuite) TestNormalize() {
	s.Equal("crane", s.service.Normalize("  CRANE "))
	s.Equal("crane", s.service.Normalize("crane"))
}
