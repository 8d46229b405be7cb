package main

import (
	"encoding/json"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestSnowflakeLookup_MarshalJSON(t *testing.T) {
	lookup := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	d, err := json.Marshal(lookup)
	assert.NoError(t, err)
	assert.EqualValues(t, `["42","777","1337"]`, string(d))
}

func TestSnowflakeLookup_UnmarshalJSON(t *testing.T) {
	lookup := make(snowflakeLookup)
	input := []byte(`["1337","42","777"]`)

	err := json.Unmarshal(input, &lookup)
	assert.NoError(t, err)

	expected := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	assert.Equal(t, expected, lookup)
}

func TestConfigFromBytes(t *testing.T) {
	input := []byte(`
{
	"token": "bot-token",
	"gateway": {
		"api_key": "gw-key",
		"model": "gemini-2.0-flash"
	},
	"permissions": {
		"advice": [
			"1337"
		],
		"config": {
			"42": [
				"777"
			]
		}
	},
	"aliases": {
		"makka": "maize"
	}
}
`)

	cfg, err := configFromBytes(input)
	assert.NoError(t, err)

	expected := configuration{
		Token: "bot-token",
		Gateway: gatewayConfig{
			APIKey: "gw-key",
			Model:  "gemini-2.0-flash",
		},
		Permissions: commandPermissions{
			Advice: snowflakeLookup{
				1337: {},
			},
			Config: map[discord.GuildID]snowflakeLookup{
				42: {
					777: {},
				},
			},
		},
		Aliases:   map[string]string{"makka": "maize"},
		Blacklist: snowflakeLookup{},
	}

	assert.Equal(t, expected, cfg)
}
