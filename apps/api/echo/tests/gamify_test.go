package tests

import (
	"net/http"
	"testing"

	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
)

func Test_gamifyApi_awardPoints(t *testing.T) {
	db.Reset()
	usr := createUser(t, "u1", "jane", 90)

	body := func(userID, activity string, amount ...int) []byte {
		m := map[string]interface{}{"userId": userID, "activity": activity}
		if len(amount) > 0 {
			m["customAmount"] = amount[0]
		}
		return marchallObj(t, m)
	}

	tests := []httpTest{
		{
			name: "fields required", method: http.MethodPost, path: "/api/user/points",
			body: []byte("{}"), wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown activity", method: http.MethodPost, path: "/api/user/points",
			body: body(usr.ID, "HACKING"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"activity": "unknown activity kind: HACKING"}),
		},
		{
			name: "unknown user", method: http.MethodPost, path: "/api/user/points",
			body: body("nope", "QUIZ_COMPLETED"), wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "user not found"}),
		},
		{
			name: "default amount", method: http.MethodPost, path: "/api/user/points",
			body: body(usr.ID, "QUIZ_COMPLETED"),
			wantData: marchallObj(t, map[string]interface{}{
				"success": true, "pointsAdded": 10, "totalPoints": 100, "badge": "SILVER", "badgeUpgraded": true,
			}),
		},
		{
			name: "custom amount", method: http.MethodPost, path: "/api/user/points",
			body: body(usr.ID, "PROJECT_COMPLETED", 400),
			wantData: marchallObj(t, map[string]interface{}{
				"success": true, "pointsAdded": 400, "totalPoints": 500, "badge": "GOLD", "badgeUpgraded": true,
			}),
		},
	}
	runTests(t, tests)
}

func Test_gamifyApi_userPoints(t *testing.T) {
	db.Reset()
	usr := createUser(t, "u1", "jane", 250)

	tests := []httpTest{
		{
			name: "known user", path: "/api/user/" + usr.ID + "/points",
			wantData: marchallObj(t, map[string]interface{}{"points": 250, "badge": "SILVER"}),
		},
		{
			name: "unknown user reads as zero", path: "/api/user/nope/points",
			wantData: marchallObj(t, map[string]interface{}{"points": 0, "badge": "BRONZE"}),
		},
	}
	runTests(t, tests)
}

func Test_gamifyApi_userRank(t *testing.T) {
	db.Reset()
	createUser(t, "u1", "top", 300)
	low := createUser(t, "u2", "low", 100)

	tests := []httpTest{
		{
			name: "ranked user", path: "/api/user/" + low.ID + "/rank",
			wantData: marchallObj(t, map[string]interface{}{"rank": 2, "totalPoints": 100, "badge": "SILVER"}),
		},
		{
			name: "unknown user gets null rank", path: "/api/user/nope/rank",
			wantData: marchallObj(t, map[string]interface{}{"rank": nil, "totalPoints": 0, "badge": "BRONZE"}),
		},
	}
	runTests(t, tests)
}

func Test_gamifyApi_userActivities(t *testing.T) {
	db.Reset()
	usr := createUser(t, "u1", "jane", 0)

	t.Run("empty history is an empty list", func(t *testing.T) {
		tt := httpTest{
			path:     "/api/user/" + usr.ID + "/activities",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"activities": []interface{}{}}),
		}
		req, rec := newRequest(http.MethodGet, tt.path)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("most recent first, limit respected", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			body := marchallObj(t, map[string]interface{}{"userId": usr.ID, "activity": "DAILY_LOGIN"})
			req, rec := newRequest(http.MethodPost, "/api/user/points", body)
			app.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("award failed: %s", rec.Body.String())
			}
		}

		req, rec := newRequest(http.MethodGet, "/api/user/"+usr.ID+"/activities?limit=3")
		app.ServeHTTP(rec, req)
		var resp struct {
			Activities []gamify.Activity `json:"activities"`
		}
		if err := jsonUnmarshalBody(t, rec, &resp); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if len(resp.Activities) != 3 {
			t.Fatalf("len(activities) = %d; want 3", len(resp.Activities))
		}
		for _, act := range resp.Activities {
			if act.Kind != gamify.KindDailyLogin || act.PointsEarned != 5 {
				t.Errorf("unexpected activity: %+v", act)
			}
		}
	})
}

func Test_gamifyApi_leaderboard(t *testing.T) {
	db.Reset()
	createUser(t, "u1", "top", 300)
	createUser(t, "u2", "mid", 200)
	createUser(t, "u3", "low", 100)
	createUser(t, "u4", "idle", 0)

	entry := func(rank int, id, name string, points int, badge string) map[string]interface{} {
		return map[string]interface{}{"rank": rank, "userId": id, "username": name, "points": points, "badge": badge}
	}

	tests := []httpTest{
		{
			name: "ordered by points", path: "/api/leaderboard",
			wantData: marchallObj(t, map[string]interface{}{"leaderboard": []interface{}{
				entry(1, "u1", "top", 300, "SILVER"),
				entry(2, "u2", "mid", 200, "SILVER"),
				entry(3, "u3", "low", 100, "SILVER"),
			}}),
		},
		{
			name: "limit", path: "/api/leaderboard?limit=1",
			wantData: marchallObj(t, map[string]interface{}{"leaderboard": []interface{}{
				entry(1, "u1", "top", 300, "SILVER"),
			}}),
		},
		{
			name: "weekly window includes fresh awards", path: "/api/leaderboard?timeframe=weekly",
			wantData: marchallObj(t, map[string]interface{}{"leaderboard": []interface{}{
				entry(1, "u1", "top", 300, "SILVER"),
				entry(2, "u2", "mid", 200, "SILVER"),
				entry(3, "u3", "low", 100, "SILVER"),
			}}),
		},
		{
			name: "unknown timeframe", path: "/api/leaderboard?timeframe=yearly",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"timeframe": "must be one of: all, monthly, weekly"}),
		},
	}
	runTests(t, tests)
}
