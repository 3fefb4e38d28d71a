package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Ground">
  <object id="3" x="320" y="256" width="320" height="64"/>
  <object id="1" x="0" y="288" width="320" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="4" x="100" y="288">
   <point/>
  </object>
 </objectgroup>
</map>`

func TestLoadGeometry(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	geo, err := LoadGeometry(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, geo.MapWidth)
	assert.Equal(t, 320, geo.MapHeight)
	require.Len(t, geo.Ground, 2)
	assert.Equal(t, 0.0, geo.Ground[0].X, "ground sorted left to right")
	assert.Equal(t, SpawnPoint{X: 100, Y: 288}, geo.PlayerSpawn)

	top, ok := geo.GroundTop(400)
	require.True(t, ok)
	assert.Equal(t, 256.0, top)

	_, ok = geo.GroundTop(1000)
	assert.False(t, ok)
}

func TestLoadGeometryRequiresGround(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="1" nextobjectid="1">
</map>`
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(tmx)}}

	_, err := LoadGeometry(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoGround)
}
