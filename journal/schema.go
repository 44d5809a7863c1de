package journal

const Schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	pair TEXT NOT NULL,
	investment_amount REAL NOT NULL,
	entry_rate REAL NOT NULL,
	exit_rate REAL NOT NULL,
	lot_size INTEGER NOT NULL,
	margin_per_lot REAL NOT NULL,
	usd_exposure REAL NOT NULL,
	lots_needed INTEGER NOT NULL,
	total_margin REAL NOT NULL,
	usd_value_unhedged REAL NOT NULL,
	futures_pnl_inr REAL NOT NULL,
	inr_after_hedge REAL NOT NULL,
	usd_value_hedged REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_time ON scenarios(time);
`
