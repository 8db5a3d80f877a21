package overpass

import (
	"fmt"
	"strconv"

	"tech-for-trees/internal/types"
)

// BuildAroundQuery selects every node, way and relation matching filter within
// radiusMeters of origin. "out center" makes ways and relations report a center point.
func BuildAroundQuery(filter string, radiusMeters int, origin types.Coords) string {
	around := fmt.Sprintf("(around:%d,%s,%s)",
		radiusMeters,
		strconv.FormatFloat(origin.Latitude, 'f', -1, 64),
		strconv.FormatFloat(origin.Longitude, 'f', -1, 64),
	)
	return fmt.Sprintf(`[out:json];
(
  node[%[1]s]%[2]s;
  way[%[1]s]%[2]s;
  relation[%[1]s]%[2]s;
);
out center;
`, filter, around)
}
