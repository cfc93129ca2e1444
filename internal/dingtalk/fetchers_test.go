package dingtalk

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenOr(handler func(w http.ResponseWriter, r *http.Request, body map[string]interface{})) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gettoken" {
			writeJSON(w, map[string]interface{}{
				"errcode":      0,
				"access_token": "tok",
				"expires_in":   7200,
			})
			return
		}
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		handler(w, r, body)
	}
}

func TestGetSubDepartments(t *testing.T) {
	client := newTestClient(t, tokenOr(func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
		assert.Equal(t, "/topapi/v2/department/listsub", r.URL.Path)
		assert.EqualValues(t, 55205497, body["dept_id"])
		writeJSON(w, map[string]interface{}{
			"errcode": 0,
			"result": []map[string]interface{}{
				{"dept_id": 100, "name": "Eng", "parent_id": 55205497},
			},
		})
	}))

	depts, err := client.GetSubDepartments(55205497)
	require.NoError(t, err)
	require.Len(t, depts, 1)
	assert.Equal(t, int64(100), depts[0].DeptID)
	assert.Equal(t, "Eng", depts[0].Name)
	assert.Equal(t, int64(55205497), depts[0].ParentID)
}

func TestGetUserListSimpleFollowsCursor(t *testing.T) {
	client := newTestClient(t, tokenOr(func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
		cursor := int64(body["cursor"].(float64))
		switch cursor {
		case 0:
			writeJSON(w, map[string]interface{}{
				"errcode": 0,
				"result": map[string]interface{}{
					"has_more":    true,
					"next_cursor": 2,
					"list": []map[string]interface{}{
						{"userid": "u1", "name": "Budi"},
						{"userid": "u2", "name": "Sari"},
					},
				},
			})
		case 2:
			writeJSON(w, map[string]interface{}{
				"errcode": 0,
				"result": map[string]interface{}{
					"has_more": false,
					"list": []map[string]interface{}{
						{"userid": "u3", "name": "Andi"},
					},
				},
			})
		default:
			t.Fatalf("cursor tidak terduga: %d", cursor)
		}
	}))

	users, err := client.GetUserListSimple(100)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "u3", users[2].UserID)
}

func TestGetLeaveStatusFollowsOffset(t *testing.T) {
	client := newTestClient(t, tokenOr(func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
		offset := int(body["offset"].(float64))
		switch offset {
		case 0:
			writeJSON(w, map[string]interface{}{
				"errcode": 0,
				"result": map[string]interface{}{
					"has_more": true,
					"leave_status": []map[string]interface{}{
						{"userid": "u1", "start_time": 1000, "end_time": 2000, "duration_percent": 100, "duration_unit": "percent_day"},
					},
				},
			})
		case 20:
			writeJSON(w, map[string]interface{}{
				"errcode": 0,
				"result": map[string]interface{}{
					"has_more": false,
					"leave_status": []map[string]interface{}{
						{"userid": "u2", "start_time": 3000, "end_time": 4000, "duration_percent": 480, "duration_unit": "percent_hour"},
					},
				},
			})
		default:
			t.Fatalf("offset tidak terduga: %d", offset)
		}
	}))

	records, err := client.GetLeaveStatus([]string{"u1", "u2"}, 0, 10000)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 480, records[1].DurationPercent)
}

func TestGetVacationRecordListFiltersNonLeaveRows(t *testing.T) {
	client := newTestClient(t, tokenOr(func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
		assert.Equal(t, "op-1", body["op_userid"])
		assert.Equal(t, "annual", body["leave_code"])
		writeJSON(w, map[string]interface{}{
			"errcode": 0,
			"result": map[string]interface{}{
				"has_more": false,
				"leave_records": []map[string]interface{}{
					// Cuti betulan
					{"userid": "u1", "leave_code": "annual", "start_time": 1000, "end_time": 2000,
						"record_num_per_day": 100, "leave_status": "success"},
					// Belum disetujui: dibuang
					{"userid": "u2", "leave_code": "annual", "start_time": 1000, "end_time": 2000,
						"record_num_per_day": 100, "leave_status": "pending"},
					// Baris pembukuan saldo (cal_type non-null): dibuang
					{"userid": "u3", "leave_code": "annual", "start_time": 1000, "end_time": 2000,
						"record_num_per_day": 100, "leave_status": "success", "cal_type": "1"},
				},
			},
		})
	}))

	records, err := client.GetVacationRecordList("op-1", "annual", []string{"u1", "u2", "u3"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0].UserID)
}

func TestGetVacationTypeListDefaultsHoursInPerDay(t *testing.T) {
	client := newTestClient(t, tokenOr(func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
		assert.Equal(t, "all", body["vacation_source"])
		writeJSON(w, map[string]interface{}{
			"errcode": 0,
			"result": []map[string]interface{}{
				{"leave_code": "annual", "leave_name": "年假", "leave_view_unit": "day"},
				{"leave_code": "shift", "leave_name": "调休", "leave_view_unit": "hour", "hours_in_per_day": 1200},
			},
		})
	}))

	types, err := client.GetVacationTypeList("op-1")
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, 800, types[0].HoursInPerDay)
	assert.Equal(t, 1200, types[1].HoursInPerDay)
}
