package gazetteer

import "github.com/ppiankov/crimezones/internal/model"

// manausEntries is the built-in neighborhood table, in resolution order.
// Aliases (abbreviations, names with and without accents) repeat coordinates.
var manausEntries = []model.GazetteerEntry{
	// Centro-Sul
	{Key: "centro", Lat: -3.1190, Lng: -60.0217, Zone: model.ZoneCentroSul, RadiusMeters: 800},
	{Key: "centro histórico", Lat: -3.1190, Lng: -60.0217, Zone: model.ZoneCentroSul, RadiusMeters: 800},
	{Key: "cachoeirinha", Lat: -3.1145, Lng: -60.0310, Zone: model.ZoneCentroSul, RadiusMeters: 600},
	{Key: "são geraldo", Lat: -3.1100, Lng: -60.0270, Zone: model.ZoneCentroSul, RadiusMeters: 500},
	{Key: "praça 14 de janeiro", Lat: -3.1150, Lng: -60.0240, Zone: model.ZoneCentroSul, RadiusMeters: 400},
	{Key: "praça 14", Lat: -3.1150, Lng: -60.0240, Zone: model.ZoneCentroSul, RadiusMeters: 400},
	{Key: "santa luzia", Lat: -3.1080, Lng: -60.0300, Zone: model.ZoneCentroSul, RadiusMeters: 400},
	{Key: "vila buriti", Lat: -3.1050, Lng: -60.0240, Zone: model.ZoneCentroSul, RadiusMeters: 400},

	// Sul
	{Key: "educandos", Lat: -3.1340, Lng: -60.0150, Zone: model.ZoneSul, RadiusMeters: 500},
	{Key: "colônia oliveira machado", Lat: -3.1450, Lng: -60.0280, Zone: model.ZoneSul, RadiusMeters: 600},
	{Key: "oliveira machado", Lat: -3.1450, Lng: -60.0280, Zone: model.ZoneSul, RadiusMeters: 600},
	{Key: "mauazinho", Lat: -3.1380, Lng: -59.9950, Zone: model.ZoneSul, RadiusMeters: 500},
	{Key: "crespo", Lat: -3.1270, Lng: -60.0070, Zone: model.ZoneSul, RadiusMeters: 400},
	{Key: "betânia", Lat: -3.1400, Lng: -60.0100, Zone: model.ZoneSul, RadiusMeters: 400},
	{Key: "raiz", Lat: -3.1350, Lng: -60.0200, Zone: model.ZoneSul, RadiusMeters: 400},
	{Key: "port. da amazônia", Lat: -3.1330, Lng: -60.0220, Zone: model.ZoneSul, RadiusMeters: 350},
	{Key: "petrópolis", Lat: -3.1030, Lng: -60.0320, Zone: model.ZoneSul, RadiusMeters: 400},

	// Norte
	{Key: "cidade nova", Lat: -3.0356, Lng: -60.0222, Zone: model.ZoneNorte, RadiusMeters: 600},
	{Key: "colônia terra nova", Lat: -2.9850, Lng: -60.0350, Zone: model.ZoneNorte, RadiusMeters: 800},
	{Key: "terra nova", Lat: -2.9850, Lng: -60.0350, Zone: model.ZoneNorte, RadiusMeters: 800},
	{Key: "novo israel", Lat: -3.0250, Lng: -60.0070, Zone: model.ZoneNorte, RadiusMeters: 500},
	{Key: "monte das oliveiras", Lat: -3.0100, Lng: -60.0200, Zone: model.ZoneNorte, RadiusMeters: 600},
	{Key: "santa etelvina", Lat: -2.9780, Lng: -60.0250, Zone: model.ZoneNorte, RadiusMeters: 700},
	{Key: "lago azul", Lat: -3.0150, Lng: -60.0400, Zone: model.ZoneNorte, RadiusMeters: 600},
	{Key: "tarumã", Lat: -3.0500, Lng: -60.0750, Zone: model.ZoneNorte, RadiusMeters: 800},
	{Key: "tarumã-açu", Lat: -3.0600, Lng: -60.0900, Zone: model.ZoneNorte, RadiusMeters: 700},
	{Key: "nova cidade", Lat: -3.0200, Lng: -60.0350, Zone: model.ZoneNorte, RadiusMeters: 600},
	{Key: "novo aleixo", Lat: -3.0050, Lng: -59.9900, Zone: model.ZoneNorte, RadiusMeters: 600},
	{Key: "campos eliseos", Lat: -3.0180, Lng: -60.0100, Zone: model.ZoneNorte, RadiusMeters: 500},
	{Key: "campos elíseos", Lat: -3.0180, Lng: -60.0100, Zone: model.ZoneNorte, RadiusMeters: 500},

	// Leste
	{Key: "são josé operário", Lat: -3.0578, Lng: -59.9630, Zone: model.ZoneLeste, RadiusMeters: 700},
	{Key: "são josé", Lat: -3.0578, Lng: -59.9630, Zone: model.ZoneLeste, RadiusMeters: 700},
	{Key: "jorge teixeira", Lat: -3.0480, Lng: -59.9420, Zone: model.ZoneLeste, RadiusMeters: 900},
	{Key: "zumbi dos palmares", Lat: -3.0620, Lng: -59.9550, Zone: model.ZoneLeste, RadiusMeters: 700},
	{Key: "zumbi", Lat: -3.0620, Lng: -59.9550, Zone: model.ZoneLeste, RadiusMeters: 700},
	{Key: "armando mendes", Lat: -3.0700, Lng: -59.9680, Zone: model.ZoneLeste, RadiusMeters: 500},
	{Key: "coroado", Lat: -3.0880, Lng: -59.9730, Zone: model.ZoneLeste, RadiusMeters: 600},
	{Key: "puraquequara", Lat: -3.1200, Lng: -59.9200, Zone: model.ZoneLeste, RadiusMeters: 1000},
	{Key: "distrito industrial", Lat: -3.0920, Lng: -59.9300, Zone: model.ZoneLeste, RadiusMeters: 1200},
	{Key: "gilberto mestrinho", Lat: -3.0750, Lng: -59.9400, Zone: model.ZoneLeste, RadiusMeters: 600},
	{Key: "colônia antônio aleixo", Lat: -3.1100, Lng: -59.9250, Zone: model.ZoneLeste, RadiusMeters: 600},
	{Key: "antônio aleixo", Lat: -3.1100, Lng: -59.9250, Zone: model.ZoneLeste, RadiusMeters: 600},
	{Key: "tancredo neves", Lat: -3.0820, Lng: -59.9600, Zone: model.ZoneLeste, RadiusMeters: 700},
	{Key: "mauá", Lat: -3.0650, Lng: -59.9750, Zone: model.ZoneLeste, RadiusMeters: 500},

	// Oeste
	{Key: "compensa", Lat: -3.1095, Lng: -60.0555, Zone: model.ZoneOeste, RadiusMeters: 700},
	{Key: "santo agostinho", Lat: -3.1020, Lng: -60.0680, Zone: model.ZoneOeste, RadiusMeters: 500},
	{Key: "glória", Lat: -3.1180, Lng: -60.0450, Zone: model.ZoneOeste, RadiusMeters: 400},
	{Key: "são raimundo", Lat: -3.1070, Lng: -60.0420, Zone: model.ZoneOeste, RadiusMeters: 400},
	{Key: "redenção", Lat: -3.0950, Lng: -60.0560, Zone: model.ZoneOeste, RadiusMeters: 500},
	{Key: "da paz", Lat: -3.0850, Lng: -60.0650, Zone: model.ZoneOeste, RadiusMeters: 600},
	{Key: "planalto", Lat: -3.0720, Lng: -60.0600, Zone: model.ZoneOeste, RadiusMeters: 700},
	{Key: "nova esperança", Lat: -3.0500, Lng: -60.0680, Zone: model.ZoneOeste, RadiusMeters: 600},
	{Key: "lírio do vale", Lat: -3.0400, Lng: -60.0700, Zone: model.ZoneOeste, RadiusMeters: 600},
	{Key: "petros", Lat: -3.0600, Lng: -60.0750, Zone: model.ZoneOeste, RadiusMeters: 500},
	{Key: "grande vitória", Lat: -3.0450, Lng: -60.0630, Zone: model.ZoneOeste, RadiusMeters: 600},
	{Key: "ponta negra", Lat: -3.0800, Lng: -60.1050, Zone: model.ZoneOeste, RadiusMeters: 700},
	{Key: "st. augusto", Lat: -3.1020, Lng: -60.0680, Zone: model.ZoneOeste, RadiusMeters: 500},

	// Centro-Oeste
	{Key: "alvorada", Lat: -3.0920, Lng: -60.0400, Zone: model.ZoneCentroOeste, RadiusMeters: 600},
	{Key: "chapada", Lat: -3.0800, Lng: -60.0250, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "flores", Lat: -3.0680, Lng: -60.0280, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "parque 10", Lat: -3.0790, Lng: -60.0120, Zone: model.ZoneCentroOeste, RadiusMeters: 600},
	{Key: "parque 10 de novembro", Lat: -3.0790, Lng: -60.0120, Zone: model.ZoneCentroOeste, RadiusMeters: 600},
	{Key: "adrianópolis", Lat: -3.0960, Lng: -60.0180, Zone: model.ZoneCentroOeste, RadiusMeters: 400},
	{Key: "nossa senhora das graças", Lat: -3.1000, Lng: -60.0200, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "nsg", Lat: -3.1000, Lng: -60.0200, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "morada do sol", Lat: -3.0700, Lng: -60.0180, Zone: model.ZoneCentroOeste, RadiusMeters: 400},
	{Key: "vieiralves", Lat: -3.0730, Lng: -60.0090, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "santo antônio", Lat: -3.0850, Lng: -60.0350, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "japiim", Lat: -3.0970, Lng: -60.0260, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "matriz", Lat: -3.1050, Lng: -60.0270, Zone: model.ZoneCentroOeste, RadiusMeters: 400},
	{Key: "aparecida", Lat: -3.1060, Lng: -60.0200, Zone: model.ZoneCentroOeste, RadiusMeters: 400},
	{Key: "dom pedro", Lat: -3.0830, Lng: -60.0170, Zone: model.ZoneCentroOeste, RadiusMeters: 600},
	{Key: "st. antônio", Lat: -3.0850, Lng: -60.0350, Zone: model.ZoneCentroOeste, RadiusMeters: 500},
	{Key: "santos dumont", Lat: -3.0880, Lng: -60.0440, Zone: model.ZoneCentroOeste, RadiusMeters: 450},
}

// Manaus returns the built-in Manaus gazetteer
func Manaus() *Gazetteer {
	g, err := New(manausEntries)
	if err != nil {
		panic("gazetteer: invalid built-in table: " + err.Error())
	}
	return g
}
