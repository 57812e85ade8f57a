package postgres

// schema creates every table the store uses. Statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS assessments (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    vals JSONB NOT NULL DEFAULT '{}'::jsonb,
    grade_opt_in BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assessments_user_created ON assessments(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at, id);

CREATE TABLE IF NOT EXISTS correlations (
    metric TEXT NOT NULL,
    target TEXT NOT NULL,
    coefficient DOUBLE PRECISION NOT NULL,
    sample_size INTEGER NOT NULL,
    ci_low DOUBLE PRECISION NOT NULL,
    ci_high DOUBLE PRECISION NOT NULL,
    confidence_level DOUBLE PRECISION NOT NULL,
    p_value DOUBLE PRECISION NOT NULL,
    computed_at TIMESTAMP WITH TIME ZONE NOT NULL,
    CONSTRAINT valid_coefficient CHECK (coefficient >= -1 AND coefficient <= 1),
    CONSTRAINT valid_sample_size CHECK (sample_size >= 4)
);

CREATE TABLE IF NOT EXISTS normalized_exports (
    assessment_id TEXT PRIMARY KEY REFERENCES assessments(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    vals DOUBLE PRECISION[] NOT NULL,
    exported_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS recommendations (
    id TEXT PRIMARY KEY,
    assessment_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    text TEXT NOT NULL,
    supporting_metric TEXT NOT NULL,
    strength DOUBLE PRECISION NOT NULL,
    priority_rank INTEGER NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    status_updated_at TIMESTAMP WITH TIME ZONE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL,
    CONSTRAINT valid_status CHECK (status IN ('pending', 'attempted', 'completed', 'not_applicable'))
);
CREATE INDEX IF NOT EXISTS idx_recommendations_assessment ON recommendations(assessment_id, priority_rank);

CREATE TABLE IF NOT EXISTS profiles (
    user_id TEXT PRIMARY KEY,
    course TEXT NOT NULL DEFAULT '',
    year_level TEXT NOT NULL DEFAULT '',
    career TEXT NOT NULL DEFAULT ''
);
`
