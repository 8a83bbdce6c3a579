package auditstore

const schema = `
CREATE TABLE IF NOT EXISTS auditor (
    id TEXT PRIMARY KEY,
    ideusu TEXT NOT NULL,
    detusu TEXT NOT NULL,
    fecusu TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_auditor_ideusu ON auditor(ideusu);
CREATE INDEX IF NOT EXISTS idx_auditor_fecusu ON auditor(fecusu);
`
