package model

// closed sets accepted by the registration quiz

type UserType string

const (
	USER_TYPE_FOUNDER           = UserType("founder")
	USER_TYPE_INVESTOR          = UserType("investor")
	USER_TYPE_ADVISOR           = UserType("advisor")
	USER_TYPE_ECOSYSTEM_PARTNER = UserType("ecosystem_partner")
)

func (u UserType) Valid() bool {
	switch u {
	case USER_TYPE_FOUNDER, USER_TYPE_INVESTOR, USER_TYPE_ADVISOR, USER_TYPE_ECOSYSTEM_PARTNER:
		return true
	}
	return false
}

func UserTypes() []UserType {
	return []UserType{USER_TYPE_FOUNDER, USER_TYPE_INVESTOR, USER_TYPE_ADVISOR, USER_TYPE_ECOSYSTEM_PARTNER}
}

type Industry string

const (
	INDUSTRY_SAAS       = Industry("saas")
	INDUSTRY_FINTECH    = Industry("fintech")
	INDUSTRY_HEALTHTECH = Industry("healthtech")
	INDUSTRY_ECOMMERCE  = Industry("ecommerce")
	INDUSTRY_AI_ML      = Industry("ai_ml")
	INDUSTRY_OTHER      = Industry("other")
)

func (i Industry) Valid() bool {
	switch i {
	case INDUSTRY_SAAS, INDUSTRY_FINTECH, INDUSTRY_HEALTHTECH,
		INDUSTRY_ECOMMERCE, INDUSTRY_AI_ML, INDUSTRY_OTHER:
		return true
	}
	return false
}

func Industries() []Industry {
	return []Industry{
		INDUSTRY_SAAS, INDUSTRY_FINTECH, INDUSTRY_HEALTHTECH,
		INDUSTRY_ECOMMERCE, INDUSTRY_AI_ML, INDUSTRY_OTHER,
	}
}

// EventFormat is both an attendee's preferred format and a group's format.
type EventFormat string

const (
	EVENT_FORMAT_DINNER     = EventFormat("dinner")
	EVENT_FORMAT_ROUNDTABLE = EventFormat("roundtable")
	EVENT_FORMAT_MENTORSHIP = EventFormat("mentorship")
)

func (f EventFormat) Valid() bool {
	switch f {
	case EVENT_FORMAT_DINNER, EVENT_FORMAT_ROUNDTABLE, EVENT_FORMAT_MENTORSHIP:
		return true
	}
	return false
}

func EventFormats() []EventFormat {
	return []EventFormat{EVENT_FORMAT_DINNER, EVENT_FORMAT_ROUNDTABLE, EVENT_FORMAT_MENTORSHIP}
}

// StartupStage only means something for founders.
type StartupStage string

const (
	STARTUP_STAGE_IDEA          = StartupStage("idea")
	STARTUP_STAGE_MVP           = StartupStage("mvp")
	STARTUP_STAGE_SCALING       = StartupStage("scaling")
	STARTUP_STAGE_SERIES_A_PLUS = StartupStage("series_a_plus")
)

func (s StartupStage) Valid() bool {
	switch s {
	case STARTUP_STAGE_IDEA, STARTUP_STAGE_MVP, STARTUP_STAGE_SCALING, STARTUP_STAGE_SERIES_A_PLUS:
		return true
	}
	return false
}

func StartupStages() []StartupStage {
	return []StartupStage{STARTUP_STAGE_IDEA, STARTUP_STAGE_MVP, STARTUP_STAGE_SCALING, STARTUP_STAGE_SERIES_A_PLUS}
}

// Challenge only means something for founders.
type Challenge string

const (
	CHALLENGE_FUNDRAISING = Challenge("fundraising")
	CHALLENGE_HIRING      = Challenge("hiring")
	CHALLENGE_NEW_MARKETS = Challenge("new_markets")
	CHALLENGE_SCALING_OPS = Challenge("scaling_ops")
)

func (c Challenge) Valid() bool {
	switch c {
	case CHALLENGE_FUNDRAISING, CHALLENGE_HIRING, CHALLENGE_NEW_MARKETS, CHALLENGE_SCALING_OPS:
		return true
	}
	return false
}

func Challenges() []Challenge {
	return []Challenge{CHALLENGE_FUNDRAISING, CHALLENGE_HIRING, CHALLENGE_NEW_MARKETS, CHALLENGE_SCALING_OPS}
}

// Enum is implemented by every closed-set type above.
type Enum interface {
	Valid() bool
}
