package sqlite

// Timestamps are stored as fixed-width UTC text (timeLayout) so that
// lexical comparison in CHECK constraints matches chronological order.
const schema = `
CREATE TABLE IF NOT EXISTS cards (
    seq              INTEGER PRIMARY KEY AUTOINCREMENT,
    id               TEXT    NOT NULL UNIQUE,
    owner_id         TEXT    NOT NULL,
    front            TEXT    NOT NULL CHECK (trim(front) <> ''),
    back             TEXT    NOT NULL CHECK (trim(back) <> ''),
    category         TEXT    NOT NULL DEFAULT '',
    difficulty       TEXT    CHECK (difficulty IN ('EASY', 'MEDIUM', 'HARD')),
    date_created     TEXT    NOT NULL,
    last_reviewed    TEXT,
    next_review_date TEXT,
    group_id         TEXT,
    CHECK (next_review_date IS NULL OR last_reviewed IS NULL OR next_review_date >= last_reviewed),
    CHECK (last_reviewed IS NOT NULL OR next_review_date IS NULL)
);

CREATE INDEX IF NOT EXISTS cards_owner_group_idx ON cards (owner_id, group_id);
`

const timeLayout = "2006-01-02T15:04:05.000000Z"
