package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Profiles & Points Schema

-- 1. Rider Profiles
CREATE TABLE IF NOT EXISTS profiles (
    user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(50) UNIQUE NOT NULL,
    performance_points INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- 2. Purchase Credits
-- One row per credited order; the primary key makes awarding idempotent.
CREATE TABLE IF NOT EXISTS purchase_credits (
    order_id VARCHAR(255) PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
    credited_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Catalog Schema

-- Part Categories
CREATE TABLE IF NOT EXISTS categories (
    category_id SERIAL PRIMARY KEY,
    name VARCHAR(100) UNIQUE NOT NULL
);

-- Seed Categories
INSERT INTO categories (name) VALUES
('Batteries'), ('Freinage'), ('Pneus'), ('Chambres à Air'), ('Autres')
ON CONFLICT DO NOTHING;

-- Replacement Parts
CREATE TABLE IF NOT EXISTS parts (
    part_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(200) NOT NULL,
    category_id INTEGER REFERENCES categories(category_id) ON DELETE SET NULL,
    difficulty_level INTEGER NOT NULL DEFAULT 0,
    price_cents INTEGER NOT NULL DEFAULT 0,
    image_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_parts_category_id ON parts (category_id);

-- Scooter Models
CREATE TABLE IF NOT EXISTS scooters (
    scooter_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    brand VARCHAR(100) NOT NULL,
    model VARCHAR(100) NOT NULL,
    year INTEGER NOT NULL DEFAULT 0,
    image_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Part/Scooter Compatibility (Many-to-Many)
CREATE TABLE IF NOT EXISTS part_compatibility (
    part_id UUID REFERENCES parts(part_id) ON DELETE CASCADE,
    scooter_id UUID REFERENCES scooters(scooter_id) ON DELETE CASCADE,
    PRIMARY KEY (part_id, scooter_id)
);

-- Garage Schema

-- Scooters riders track in their garage
CREATE TABLE IF NOT EXISTS user_garage (
    item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
    scooter_id UUID NOT NULL REFERENCES scooters(scooter_id) ON DELETE RESTRICT,
    is_owned BOOLEAN NOT NULL DEFAULT FALSE,
    nickname VARCHAR(100) NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    odometer_km INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_user_garage_user_id ON user_garage (user_id);

-- Modification History
CREATE TABLE IF NOT EXISTS garage_modifications (
    event_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    garage_item_id UUID NOT NULL REFERENCES user_garage(item_id) ON DELETE CASCADE,
    part_id UUID NOT NULL REFERENCES parts(part_id) ON DELETE RESTRICT,
    order_item_id VARCHAR(255) UNIQUE,
    installed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    difficulty_level INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    xp_earned INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_garage_modifications_item ON garage_modifications (garage_item_id, installed_at DESC);
`
